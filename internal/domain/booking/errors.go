package booking

import (
	"fmt"

	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval   = errs.NewKind("start time must be before end time", errs.ErrInvalidInterval)
	ErrInvalidTransition = errs.NewKind("booking status transition is not allowed", errs.ErrInvalidTransition)
	ErrUnknownStatus     = errs.NewKind("unknown booking status", errs.ErrValidation)
	ErrNegativePrice     = errs.NewKind("total price cannot be negative", errs.ErrValidation)
	ErrEmptyRenterName   = errs.NewKind("renter name cannot be empty", errs.ErrValidation)
	ErrRenterNameTooLong = errs.NewKind("renter name is too long", errs.ErrValidation)
	ErrMissingResource   = errs.NewKind("resource id is required", errs.ErrValidation)
	ErrMissingRenter     = errs.NewKind("renter id is required", errs.ErrValidation)
	ErrNotParticipant    = errs.NewKind("only the renter, the owner or an admin can change this booking", errs.ErrForbidden)
	ErrBookingNotFound   = errs.NewKind("booking not found", errs.ErrNotFound)
	ErrStatusChanged     = errs.NewKind("booking status changed concurrently", errs.ErrInvalidTransition)
)

// ConflictError names the active booking that already holds the requested slot.
type ConflictError struct {
	BookingID uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflicts with active booking %s", e.BookingID)
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrBookingConflict
}

func NewConflictError(bookingID uuid.UUID) error {
	return &ConflictError{BookingID: bookingID}
}

// ConflictingBookingID extracts the conflicting id from err, if any.
func ConflictingBookingID(err error) (uuid.UUID, bool) {
	var ce *ConflictError
	if errs.As(err, &ce) {
		return ce.BookingID, true
	}
	return uuid.Nil, false
}
