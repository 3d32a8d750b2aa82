package queries

import (
	"context"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/resource"
	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindFirstPage(ctx context.Context, filter BookingFilter, limit int32) ([]*BookingView, error)
	FindKeyset(ctx context.Context, filter BookingFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	// FindActiveInWindow may return a superset; the domain overlap rule decides.
	FindActiveInWindow(ctx context.Context, resourceID uuid.UUID, slot booking.TimeSlot) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	CheckConflict(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*ConflictCheck, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	resources ResourceReadStore
}

func NewBookingQueries(bookings BookingReadStore, resources ResourceReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, resources: resources}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	lastCreatedAt, lastID, hasCursor, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	var rows []*BookingView
	if hasCursor {
		rows, err = q.bookings.FindKeyset(ctx, filter, lastCreatedAt, lastID, int32(limit+1))
	} else {
		rows, err = q.bookings.FindFirstPage(ctx, filter, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := paginate(rows, limit, func(v *BookingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}

// CheckConflict reports whether [start, end) collides with an active booking on
// the resource. It reads a snapshot and takes no lock.
func (q *bookingQueriesImpl) CheckConflict(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*ConflictCheck, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	if _, err := q.resources.FindByID(ctx, resourceID); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, resource.ErrResourceNotFound
		}
		return nil, err
	}

	active, err := q.bookings.FindActiveInWindow(ctx, resourceID, slot)
	if err != nil {
		return nil, err
	}

	conflict := booking.FindConflict(slot, active)
	if conflict == nil {
		return &ConflictCheck{Conflict: false}, nil
	}
	id := conflict.ID()
	return &ConflictCheck{Conflict: true, ConflictingBookingID: &id}, nil
}
