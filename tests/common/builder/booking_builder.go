//go:build unit || e2e

package builder

import (
	"time"

	"parkshare/internal/domain/booking"
	reqdto "parkshare/internal/handler/dto/request"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ResourceID      uuid.UUID
	RenterID        uuid.UUID
	RenterName      string
	Start           time.Time
	End             time.Time
	Status          booking.Status
	TotalPriceCents int64
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ResourceID:      uuid.New(),
		RenterID:        uuid.New(),
		RenterName:      "Alex Renter",
		Start:           start,
		End:             start.Add(2 * time.Hour),
		Status:          booking.StatusPending,
		TotalPriceCents: 1200,
		CreatedAt:       time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithResourceID(id uuid.UUID) *BookingBuilder {
	b.ResourceID = id
	return b
}

func (b *BookingBuilder) WithRenterID(id uuid.UUID) *BookingBuilder {
	b.RenterID = id
	return b
}

func (b *BookingBuilder) WithRenterName(name string) *BookingBuilder {
	b.RenterName = name
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithTotalPrice(cents int64) *BookingBuilder {
	b.TotalPriceCents = cents
	return b
}

// BuildDomain returns a booking in b.Status. Non-pending states are
// reconstructed directly since the state machine would reject some of them.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	name, err := booking.NewRenterName(b.RenterName)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(b.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	if b.Status == booking.StatusPending {
		return booking.NewBooking(b.ResourceID, b.RenterID, name, slot, price, b.CreatedAt)
	}
	return booking.ReconstructBooking(uuid.New(), b.ResourceID, b.RenterID, name, slot, b.Status, price, b.CreatedAt, b.CreatedAt), nil
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildCreateRequest() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ResourceID:      b.ResourceID,
		RenterName:      b.RenterName,
		StartTime:       b.Start,
		EndTime:         b.End,
		TotalPriceCents: b.TotalPriceCents,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID:      b.ResourceID,
		RenterName:      b.RenterName,
		StartTime:       b.Start,
		EndTime:         b.End,
		TotalPriceCents: b.TotalPriceCents,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              uuid.New(),
		ResourceID:      b.ResourceID,
		RenterID:        b.RenterID,
		RenterName:      b.RenterName,
		StartTime:       b.Start,
		EndTime:         b.End,
		Status:          b.Status.String(),
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}
