package memstore

import (
	"context"
	"sort"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/payment"
	"parkshare/internal/domain/resource"
	"parkshare/internal/domain/review"
	"parkshare/internal/infra"
	"parkshare/internal/usecase/shared"

	"github.com/google/uuid"
)

// tx overlays staged rows on the committed store. Reads see the transaction's
// own writes plus everything committed.
type tx struct {
	store *Store
	held  map[lockKey]func()

	resources   map[uuid.UUID]resourceRow
	bookings    map[uuid.UUID]bookingRow
	payments    map[uuid.UUID]paymentRow
	reviews     []reviewRow
	ratingStats map[uuid.UUID]ratingStatsRow
	outbox      map[uuid.UUID]shared.OutboxEvent

	// bookingReads holds the committed status each booking had when last read.
	bookingReads map[uuid.UUID]booking.Status

	// checks run under the store write lock right before the rows are applied.
	checks []func() error
}

func newTx(s *Store) *tx {
	return &tx{
		store:       s,
		held:        make(map[lockKey]func()),
		resources:   make(map[uuid.UUID]resourceRow),
		bookings:    make(map[uuid.UUID]bookingRow),
		payments:    make(map[uuid.UUID]paymentRow),
		ratingStats: make(map[uuid.UUID]ratingStatsRow),
		outbox:      make(map[uuid.UUID]shared.OutboxEvent),

		bookingReads: make(map[uuid.UUID]booking.Status),
	}
}

func (t *tx) release() {
	for _, unlock := range t.held {
		unlock()
	}
	t.held = nil
}

type lockKey struct {
	scope string
	id    uuid.UUID
}

func (t *tx) LockResource(ctx context.Context, resourceID uuid.UUID) error {
	return t.lock(ctx, t.store.resourceLocks, lockKey{"resource", resourceID})
}

func (t *tx) LockRatingSubject(ctx context.Context, subjectID uuid.UUID) error {
	return t.lock(ctx, t.store.subjectLocks, lockKey{"rating", subjectID})
}

func (t *tx) lock(ctx context.Context, locks *keyedMutex, key lockKey) error {
	if _, ok := t.held[key]; ok {
		return nil
	}
	unlock, err := locks.Lock(ctx, key.id)
	if err != nil {
		return infra.WrapRepoErr(t.store.logger, infra.KindDBFailure, "failed to acquire "+key.scope+" lock", err)
	}
	t.held[key] = unlock
	return nil
}

func (t *tx) Resources() shared.ResourceRepository      { return resourceRepo{t} }
func (t *tx) Bookings() shared.BookingRepository        { return bookingRepo{t} }
func (t *tx) Payments() shared.PaymentRepository        { return paymentRepo{t} }
func (t *tx) Reviews() shared.ReviewRepository          { return reviewRepo{t} }
func (t *tx) RatingStats() shared.RatingStatsRepository { return ratingStatsRepo{t} }
func (t *tx) Outbox() shared.OutboxRepository           { return outboxRepo{t} }

func (t *tx) notFound(msg string) error {
	return infra.WrapRepoErr(t.store.logger, infra.KindNotFound, msg, nil)
}

func (t *tx) duplicate(msg string) error {
	return infra.WrapRepoErr(t.store.logger, infra.KindDuplicateKey, msg, nil)
}

type resourceRepo struct{ t *tx }

func (r resourceRepo) lookup(id uuid.UUID) (resourceRow, bool) {
	if row, ok := r.t.resources[id]; ok {
		return row, true
	}
	r.t.store.mu.RLock()
	defer r.t.store.mu.RUnlock()
	row, ok := r.t.store.resources[id]
	return row, ok
}

func (r resourceRepo) FindByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, ok := r.lookup(id)
	if !ok {
		return nil, r.t.notFound("resource not found")
	}
	return row.domain(), nil
}

func (r resourceRepo) Create(_ context.Context, res *resource.Resource) error {
	if _, ok := r.lookup(res.ID()); ok {
		return r.t.duplicate("resource already exists")
	}
	r.t.resources[res.ID()] = toResourceRow(res)
	return nil
}

func (r resourceRepo) Update(_ context.Context, res *resource.Resource) error {
	if _, ok := r.lookup(res.ID()); !ok {
		return r.t.notFound("resource not found")
	}
	r.t.resources[res.ID()] = toResourceRow(res)
	return nil
}

type bookingRepo struct{ t *tx }

func (r bookingRepo) lookup(id uuid.UUID) (bookingRow, bool) {
	if row, ok := r.t.bookings[id]; ok {
		return row, true
	}
	r.t.store.mu.RLock()
	defer r.t.store.mu.RUnlock()
	row, ok := r.t.store.bookings[id]
	return row, ok
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, ok := r.lookup(id)
	if !ok {
		return nil, r.t.notFound("booking not found")
	}
	if _, staged := r.t.bookings[id]; !staged {
		r.t.bookingReads[id] = row.Status
	}
	return row.domain()
}

func (r bookingRepo) FindActiveInWindow(_ context.Context, resourceID uuid.UUID, slot booking.TimeSlot) ([]*booking.Booking, error) {
	rows := make(map[uuid.UUID]bookingRow)
	r.t.store.mu.RLock()
	for id, row := range r.t.store.bookings {
		if row.ResourceID == resourceID {
			rows[id] = row
		}
	}
	r.t.store.mu.RUnlock()
	for id, row := range r.t.bookings {
		if row.ResourceID == resourceID {
			rows[id] = row
		}
	}
	return activeInWindow(rows, slot)
}

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.lookup(b.ID()); ok {
		return r.t.duplicate("booking already exists")
	}
	row := toBookingRow(b)
	r.t.bookings[row.ID] = row
	r.t.checks = append(r.t.checks, func() error { return r.t.store.checkExclusion(row) })
	return nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	row, ok := r.lookup(b.ID())
	if !ok {
		return r.t.notFound("booking not found")
	}
	if _, staged := r.t.bookings[row.ID]; !staged {
		expected, read := r.t.bookingReads[row.ID]
		if !read {
			expected = row.Status
		}
		if row.Status != expected {
			return booking.ErrStatusChanged
		}
		// The status this transaction started from must still be the committed one.
		id := row.ID
		r.t.checks = append(r.t.checks, func() error {
			if stored, ok := r.t.store.bookings[id]; ok && stored.Status != expected {
				return booking.ErrStatusChanged
			}
			return nil
		})
	}

	row.Status = b.Status()
	row.UpdatedAt = storedTime(b.UpdatedAt())
	r.t.bookings[row.ID] = row
	if row.Status.IsActive() {
		r.t.checks = append(r.t.checks, func() error { return r.t.store.checkExclusion(row) })
	}
	return nil
}

// checkExclusion is the storage backstop for the no-overlap rule, the in-memory
// counterpart of the exclusion constraint. Caller holds s.mu.
func (s *Store) checkExclusion(candidate bookingRow) error {
	if !candidate.Status.IsActive() {
		return nil
	}
	for _, row := range s.bookings {
		if row.ID == candidate.ID || row.ResourceID != candidate.ResourceID || !row.Status.IsActive() {
			continue
		}
		if row.StartTime.Before(candidate.EndTime) && row.EndTime.After(candidate.StartTime) {
			return booking.NewConflictError(row.ID)
		}
	}
	return nil
}

func activeInWindow(rows map[uuid.UUID]bookingRow, slot booking.TimeSlot) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0)
	for _, row := range rows {
		if !row.Status.IsActive() {
			continue
		}
		if !row.StartTime.Before(slot.End()) || !row.EndTime.After(slot.Start()) {
			continue
		}
		b, err := row.domain()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TimeSlot().Start().Before(out[j].TimeSlot().Start())
	})
	return out, nil
}

type paymentRepo struct{ t *tx }

func (r paymentRepo) lookup(id uuid.UUID) (paymentRow, bool) {
	if row, ok := r.t.payments[id]; ok {
		return row, true
	}
	r.t.store.mu.RLock()
	defer r.t.store.mu.RUnlock()
	row, ok := r.t.store.payments[id]
	return row, ok
}

func (r paymentRepo) FindByID(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, ok := r.lookup(id)
	if !ok {
		return nil, r.t.notFound("payment not found")
	}
	return row.domain()
}

func (r paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	if _, ok := r.lookup(p.ID()); ok {
		return r.t.duplicate("payment already exists")
	}
	r.t.payments[p.ID()] = toPaymentRow(p)
	return nil
}

func (r paymentRepo) SaveCompletion(_ context.Context, p *payment.Payment) (bool, error) {
	current, ok := r.lookup(p.ID())
	if !ok {
		return false, r.t.notFound("payment not found")
	}
	if current.Status != payment.StatusPending {
		return false, nil
	}

	row := toPaymentRow(p)
	r.t.payments[row.ID] = row
	// Another settlement may commit first; the later one must not overwrite it.
	r.t.checks = append(r.t.checks, func() error {
		if stored, ok := r.t.store.payments[row.ID]; ok && stored.Status != payment.StatusPending {
			return payment.ErrAlreadySettled
		}
		return nil
	})
	return true, nil
}

type reviewRepo struct{ t *tx }

func (r reviewRepo) Create(_ context.Context, rev *review.Review) error {
	r.t.reviews = append(r.t.reviews, toReviewRow(rev))
	return nil
}

func (r reviewRepo) ListRatingsByReviewee(_ context.Context, revieweeID uuid.UUID) ([]review.Rating, error) {
	r.t.store.mu.RLock()
	rows := make([]reviewRow, 0, len(r.t.store.reviews)+len(r.t.reviews))
	rows = append(rows, r.t.store.reviews...)
	r.t.store.mu.RUnlock()
	rows = append(rows, r.t.reviews...)
	return ratingsOf(rows, revieweeID)
}

func ratingsOf(rows []reviewRow, revieweeID uuid.UUID) ([]review.Rating, error) {
	ratings := make([]review.Rating, 0)
	for _, row := range rows {
		if row.RevieweeID != revieweeID {
			continue
		}
		rating, err := review.NewRating(row.Rating)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

type ratingStatsRepo struct{ t *tx }

func (r ratingStatsRepo) Save(_ context.Context, subjectID uuid.UUID, agg review.AggregateRating, now time.Time) error {
	r.t.ratingStats[subjectID] = ratingStatsRow{Count: agg.Count(), Sum: agg.Sum(), UpdatedAt: storedTime(now)}
	return nil
}

type outboxRepo struct{ t *tx }

func (r outboxRepo) Enqueue(_ context.Context, event shared.OutboxEvent) error {
	event.RunAt = storedTime(event.RunAt)
	event.CreatedAt = storedTime(event.CreatedAt)
	r.t.outbox[event.ID] = event
	return nil
}

func (r outboxRepo) ClaimDue(_ context.Context, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	due := make(map[uuid.UUID]shared.OutboxEvent)
	r.t.store.mu.RLock()
	for id, e := range r.t.store.outbox {
		due[id] = e
	}
	r.t.store.mu.RUnlock()
	for id, e := range r.t.outbox {
		due[id] = e
	}

	events := make([]shared.OutboxEvent, 0)
	for _, e := range due {
		if e.Status == shared.OutboxStatusQueued && !e.RunAt.After(now) {
			events = append(events, e)
		}
	}
	sortEvents(events)
	if len(events) > int(limit) {
		events = events[:limit]
	}
	return events, nil
}

func (r outboxRepo) update(id uuid.UUID, mutate func(*shared.OutboxEvent)) error {
	e, ok := r.t.outbox[id]
	if !ok {
		r.t.store.mu.RLock()
		e, ok = r.t.store.outbox[id]
		r.t.store.mu.RUnlock()
	}
	if !ok {
		return r.t.notFound("outbox event not found")
	}
	mutate(&e)
	r.t.outbox[id] = e
	return nil
}

func (r outboxRepo) MarkSent(_ context.Context, id uuid.UUID, _ time.Time) error {
	return r.update(id, func(e *shared.OutboxEvent) {
		e.Status = shared.OutboxStatusSent
		e.Attempts++
	})
}

func (r outboxRepo) MarkRetry(_ context.Context, id uuid.UUID, attempts int32, runAt time.Time, lastError string) error {
	return r.update(id, func(e *shared.OutboxEvent) {
		e.Attempts = attempts
		e.RunAt = storedTime(runAt)
		e.LastError = &lastError
	})
}

func (r outboxRepo) MarkFailed(_ context.Context, id uuid.UUID, attempts int32, lastError string, _ time.Time) error {
	return r.update(id, func(e *shared.OutboxEvent) {
		e.Status = shared.OutboxStatusFailed
		e.Attempts = attempts
		e.LastError = &lastError
	})
}

func sortEvents(events []shared.OutboxEvent) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].RunAt.Equal(events[j].RunAt) {
			return events[i].RunAt.Before(events[j].RunAt)
		}
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
}
