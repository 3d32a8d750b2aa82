package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	renterID   uuid.UUID
	renterName RenterName
	timeSlot   TimeSlot
	status     Status
	totalPrice Money
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking builds a pending booking. The price comes from the caller and is
// never recalculated afterwards.
func NewBooking(resourceID, renterID uuid.UUID, renterName RenterName, slot TimeSlot, totalPrice Money, now time.Time) (*Booking, error) {
	if resourceID == uuid.Nil {
		return nil, ErrMissingResource
	}
	if renterID == uuid.Nil {
		return nil, ErrMissingRenter
	}

	return &Booking{
		id:         uuid.New(),
		resourceID: resourceID,
		renterID:   renterID,
		renterName: renterName,
		timeSlot:   slot,
		status:     StatusPending,
		totalPrice: totalPrice,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, resourceID, renterID uuid.UUID,
	renterName RenterName,
	slot TimeSlot,
	status Status,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		renterID:   renterID,
		renterName: renterName,
		timeSlot:   slot,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) TransitionTo(target Status, now time.Time) error {
	if !target.IsValid() {
		return ErrUnknownStatus
	}
	if !b.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.status = target
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ResourceID() uuid.UUID  { return b.resourceID }
func (b *Booking) RenterID() uuid.UUID    { return b.renterID }
func (b *Booking) RenterName() RenterName { return b.renterName }
func (b *Booking) TimeSlot() TimeSlot     { return b.timeSlot }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) TotalPrice() Money      { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
