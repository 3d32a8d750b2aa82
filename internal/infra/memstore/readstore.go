package memstore

import (
	"context"
	"sort"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/review"
	"parkshare/internal/infra"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

// Read stores see committed rows only, each call under one read lock.

type BookingReadStore struct{ s *Store }

func NewBookingReadStore(s *Store) *BookingReadStore { return &BookingReadStore{s: s} }

func (r *BookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "booking not found", nil)
	}
	return row.view(), nil
}

func (r *BookingReadStore) FindFirstPage(_ context.Context, filter queries.BookingFilter, limit int32) ([]*queries.BookingView, error) {
	return r.list(filter, nil, limit), nil
}

func (r *BookingReadStore) FindKeyset(_ context.Context, filter queries.BookingFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.list(filter, &keyset{createdAt: lastCreatedAt, id: lastID}, limit), nil
}

func (r *BookingReadStore) list(filter queries.BookingFilter, after *keyset, limit int32) []*queries.BookingView {
	r.s.mu.RLock()
	rows := make([]bookingRow, 0, len(r.s.bookings))
	for _, row := range r.s.bookings {
		if filter.ResourceID != nil && row.ResourceID != *filter.ResourceID {
			continue
		}
		if filter.RenterID != nil && row.RenterID != *filter.RenterID {
			continue
		}
		if after != nil && !after.precedes(row.CreatedAt, row.ID) {
			continue
		}
		rows = append(rows, row)
	}
	r.s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		return newerFirst(rows[i].CreatedAt, rows[i].ID, rows[j].CreatedAt, rows[j].ID)
	})
	rows = truncate(rows, limit)

	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = row.view()
	}
	return views
}

func (r *BookingReadStore) FindActiveInWindow(_ context.Context, resourceID uuid.UUID, slot booking.TimeSlot) ([]*booking.Booking, error) {
	r.s.mu.RLock()
	rows := make(map[uuid.UUID]bookingRow)
	for id, row := range r.s.bookings {
		if row.ResourceID == resourceID {
			rows[id] = row
		}
	}
	r.s.mu.RUnlock()
	return activeInWindow(rows, slot)
}

type PaymentReadStore struct{ s *Store }

func NewPaymentReadStore(s *Store) *PaymentReadStore { return &PaymentReadStore{s: s} }

func (r *PaymentReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.payments[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "payment not found", nil)
	}
	return row.view(), nil
}

func (r *PaymentReadStore) FindPending(_ context.Context) ([]*queries.PaymentView, error) {
	r.s.mu.RLock()
	views := make([]*queries.PaymentView, 0)
	for _, row := range r.s.payments {
		if row.Status.IsSettled() {
			continue
		}
		views = append(views, row.view())
	}
	r.s.mu.RUnlock()

	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.Before(views[j].CreatedAt) })
	return views, nil
}

type ReviewReadStore struct{ s *Store }

func NewReviewReadStore(s *Store) *ReviewReadStore { return &ReviewReadStore{s: s} }

func (r *ReviewReadStore) FindByRevieweeFirstPage(_ context.Context, revieweeID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	return r.list(revieweeID, nil, limit), nil
}

func (r *ReviewReadStore) FindByRevieweeKeyset(_ context.Context, revieweeID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	return r.list(revieweeID, &keyset{createdAt: lastCreatedAt, id: lastID}, limit), nil
}

func (r *ReviewReadStore) list(revieweeID uuid.UUID, after *keyset, limit int32) []*queries.ReviewView {
	r.s.mu.RLock()
	rows := make([]reviewRow, 0)
	for _, row := range r.s.reviews {
		if row.RevieweeID != revieweeID {
			continue
		}
		if after != nil && !after.precedes(row.CreatedAt, row.ID) {
			continue
		}
		rows = append(rows, row)
	}
	r.s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		return newerFirst(rows[i].CreatedAt, rows[i].ID, rows[j].CreatedAt, rows[j].ID)
	})
	rows = truncate(rows, limit)

	views := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		views[i] = row.view()
	}
	return views
}

func (r *ReviewReadStore) FindRatingsByReviewee(_ context.Context, revieweeID uuid.UUID) ([]review.Rating, error) {
	r.s.mu.RLock()
	rows := append([]reviewRow(nil), r.s.reviews...)
	r.s.mu.RUnlock()
	return ratingsOf(rows, revieweeID)
}

type ResourceReadStore struct{ s *Store }

func NewResourceReadStore(s *Store) *ResourceReadStore { return &ResourceReadStore{s: s} }

func (r *ResourceReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.resources[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "resource not found", nil)
	}
	return row.view(r.s.ratingStats[row.OwnerID].aggregate()), nil
}

func (r *ResourceReadStore) FindFirstPage(_ context.Context, filter queries.ResourceFilter, limit int32) ([]*queries.ResourceView, error) {
	return r.list(filter, nil, limit), nil
}

func (r *ResourceReadStore) FindKeyset(_ context.Context, filter queries.ResourceFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ResourceView, error) {
	return r.list(filter, &keyset{createdAt: lastCreatedAt, id: lastID}, limit), nil
}

func (r *ResourceReadStore) list(filter queries.ResourceFilter, after *keyset, limit int32) []*queries.ResourceView {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := make([]resourceRow, 0, len(r.s.resources))
	for _, row := range r.s.resources {
		if !filter.IncludeUnavailable && !row.IsAvailable {
			continue
		}
		if filter.OwnerID != nil && row.OwnerID != *filter.OwnerID {
			continue
		}
		if after != nil && !after.precedes(row.CreatedAt, row.ID) {
			continue
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return newerFirst(rows[i].CreatedAt, rows[i].ID, rows[j].CreatedAt, rows[j].ID)
	})
	rows = truncate(rows, limit)

	views := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		views[i] = row.view(r.s.ratingStats[row.OwnerID].aggregate())
	}
	return views
}

type keyset struct {
	createdAt time.Time
	id        uuid.UUID
}

// precedes reports whether a row sorts after the cursor, i.e. belongs to the next page.
func (k keyset) precedes(createdAt time.Time, id uuid.UUID) bool {
	return newerFirst(k.createdAt, k.id, createdAt, id)
}

func truncate[T any](rows []T, limit int32) []T {
	if limit >= 0 && len(rows) > int(limit) {
		return rows[:limit]
	}
	return rows
}
