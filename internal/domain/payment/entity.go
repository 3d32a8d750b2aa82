package payment

import (
	"time"

	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount   = errs.NewKind("payment amount must be positive", errs.ErrValidation)
	ErrAmountMismatch      = errs.NewKind("payment amount does not match booking total", errs.ErrValidation)
	ErrMissingBooking      = errs.NewKind("booking id is required", errs.ErrValidation)
	ErrMissingParty        = errs.NewKind("renter and payee ids are required", errs.ErrValidation)
	ErrUnknownStatus       = errs.NewKind("unknown payment status", errs.ErrValidation)
	ErrAlreadySettled      = errs.NewKind("payment is already settled", errs.ErrInvalidTransition)
	ErrCompletedAtMismatch = errs.NewKind("completed_at must be set exactly when the payment is completed", errs.ErrValidation)
	ErrPaymentNotFound     = errs.NewKind("payment not found", errs.ErrNotFound)
	ErrPayeeMismatch       = errs.NewKind("payee must be the owner of the booked resource", errs.ErrValidation)
	ErrNotBookingRenter    = errs.NewKind("only the renter of the booking can pay for it", errs.ErrForbidden)
)

type Payment struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	renterID    uuid.UUID
	payeeID     uuid.UUID
	amountCents int64
	status      Status
	createdAt   time.Time
	completedAt *time.Time
}

func NewPayment(bookingID, renterID, payeeID uuid.UUID, amountCents int64, now time.Time) (*Payment, error) {
	if bookingID == uuid.Nil {
		return nil, ErrMissingBooking
	}
	if renterID == uuid.Nil || payeeID == uuid.Nil {
		return nil, ErrMissingParty
	}
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		renterID:    renterID,
		payeeID:     payeeID,
		amountCents: amountCents,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func ReconstructPayment(
	id, bookingID, renterID, payeeID uuid.UUID,
	amountCents int64,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
) (*Payment, error) {
	if !status.IsValid() {
		return nil, ErrUnknownStatus
	}
	if (status == StatusCompleted) != (completedAt != nil) {
		return nil, ErrCompletedAtMismatch
	}
	return &Payment{
		id:          id,
		bookingID:   bookingID,
		renterID:    renterID,
		payeeID:     payeeID,
		amountCents: amountCents,
		status:      status,
		createdAt:   createdAt,
		completedAt: completedAt,
	}, nil
}

// Complete records the settlement. A payment that is no longer pending is left
// untouched and ErrAlreadySettled is returned.
func (p *Payment) Complete(now time.Time) error {
	if p.status.IsSettled() {
		return ErrAlreadySettled
	}
	p.status = StatusCompleted
	completedAt := now
	p.completedAt = &completedAt
	return nil
}

// SettleAt is when the confirmation is due given the configured delay.
func (p *Payment) SettleAt(delay time.Duration) time.Time {
	return p.createdAt.Add(delay)
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) RenterID() uuid.UUID     { return p.renterID }
func (p *Payment) PayeeID() uuid.UUID      { return p.payeeID }
func (p *Payment) AmountCents() int64      { return p.amountCents }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) CompletedAt() *time.Time { return p.completedAt }
