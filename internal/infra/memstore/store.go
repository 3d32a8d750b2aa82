// Package memstore keeps every record in process memory. It backs the memory
// storage driver and the use case tests.
package memstore

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"time"

	"parkshare/internal/usecase/queries"
	"parkshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	resources   map[uuid.UUID]resourceRow
	bookings    map[uuid.UUID]bookingRow
	payments    map[uuid.UUID]paymentRow
	reviews     []reviewRow
	ratingStats map[uuid.UUID]ratingStatsRow
	outbox      map[uuid.UUID]shared.OutboxEvent

	resourceLocks *keyedMutex
	subjectLocks  *keyedMutex
	logger        *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		resources:     make(map[uuid.UUID]resourceRow),
		bookings:      make(map[uuid.UUID]bookingRow),
		payments:      make(map[uuid.UUID]paymentRow),
		ratingStats:   make(map[uuid.UUID]ratingStatsRow),
		outbox:        make(map[uuid.UUID]shared.OutboxEvent),
		resourceLocks: newKeyedMutex(),
		subjectLocks:  newKeyedMutex(),
		logger:        logger,
	}
}

// Within stages every write in the transaction and applies them together on
// success. Locks taken by fn are released when Within returns.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	t := newTx(s)
	defer t.release()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(ctx, t); err != nil {
		return err
	}
	return s.commit(t)
}

func (s *Store) commit(t *tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, check := range t.checks {
		if err := check(); err != nil {
			return err
		}
	}

	for id, row := range t.resources {
		s.resources[id] = row
	}
	for id, row := range t.bookings {
		s.bookings[id] = row
	}
	for id, row := range t.payments {
		s.payments[id] = row
	}
	s.reviews = append(s.reviews, t.reviews...)
	for id, row := range t.ratingStats {
		s.ratingStats[id] = row
	}
	for id, event := range t.outbox {
		s.outbox[id] = event
	}
	return nil
}

// OutboxEvents returns a copy of the outbox, oldest first.
func (s *Store) OutboxEvents() []shared.OutboxEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]shared.OutboxEvent, 0, len(s.outbox))
	for _, e := range s.outbox {
		events = append(events, e)
	}
	sortEvents(events)
	return events
}

// newerFirst orders rows by (createdAt, id) descending, the keyset order.
func newerFirst(aAt time.Time, aID uuid.UUID, bAt time.Time, bID uuid.UUID) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return bytes.Compare(aID[:], bID[:]) > 0
}

var (
	_ shared.UnitOfWork         = (*Store)(nil)
	_ queries.BookingReadStore  = (*BookingReadStore)(nil)
	_ queries.PaymentReadStore  = (*PaymentReadStore)(nil)
	_ queries.ReviewReadStore   = (*ReviewReadStore)(nil)
	_ queries.ResourceReadStore = (*ResourceReadStore)(nil)
)
