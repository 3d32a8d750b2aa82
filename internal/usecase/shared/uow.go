package shared

import (
	"context"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/payment"
	"parkshare/internal/domain/resource"
	"parkshare/internal/domain/review"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction: committed when fn returns nil, rolled back otherwise.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	// LockResource serializes writers of one resource's calendar until the
	// transaction ends.
	LockResource(ctx context.Context, resourceID uuid.UUID) error
	// LockRatingSubject serializes rating recomputation for one reviewee.
	LockRatingSubject(ctx context.Context, subjectID uuid.UUID) error

	Resources() ResourceRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Outbox() OutboxRepository
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	Create(ctx context.Context, res *resource.Resource) error
	Update(ctx context.Context, res *resource.Resource) error
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindActiveInWindow may return a superset; callers decide with booking.FindConflict.
	FindActiveInWindow(ctx context.Context, resourceID uuid.UUID, slot booking.TimeSlot) ([]*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	Create(ctx context.Context, p *payment.Payment) error
	// SaveCompletion persists a completed payment only if the stored row is still
	// pending. It reports whether the row was updated.
	SaveCompletion(ctx context.Context, p *payment.Payment) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) error
	ListRatingsByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]review.Rating, error)
}

type RatingStatsRepository interface {
	Save(ctx context.Context, subjectID uuid.UUID, agg review.AggregateRating, now time.Time) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event OutboxEvent) error
	ClaimDue(ctx context.Context, now time.Time, limit int32) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkRetry(ctx context.Context, id uuid.UUID, attempts int32, runAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int32, lastError string, now time.Time) error
}

// TaskScheduler runs deferred work off the request path.
type TaskScheduler interface {
	Schedule(key string, delay time.Duration, task func(ctx context.Context))
}
