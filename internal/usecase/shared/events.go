package shared

import (
	"encoding/json"
	"time"

	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	TopicBookingCreated       = "booking.created"
	TopicBookingStatusChanged = "booking.status_changed"
	TopicPaymentCreated       = "payment.created"
	TopicPaymentCompleted     = "payment.completed"
	TopicReviewCreated        = "review.created"
)

const (
	OutboxStatusQueued = "queued"
	OutboxStatusSent   = "sent"
	OutboxStatusFailed = "failed"
)

type OutboxEvent struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	Status    string
	Attempts  int32
	LastError *string
	RunAt     time.Time
	CreatedAt time.Time
}

func NewOutboxEvent(topic, key string, payload any, now time.Time) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, errs.Wrap(err, "failed to encode outbox payload")
	}
	return OutboxEvent{
		ID:        uuid.New(),
		Topic:     topic,
		Key:       key,
		Payload:   body,
		Status:    OutboxStatusQueued,
		RunAt:     now,
		CreatedAt: now,
	}, nil
}

type BookingEvent struct {
	BookingID       uuid.UUID `json:"booking_id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	RenterID        uuid.UUID `json:"renter_id"`
	Status          string    `json:"status"`
	PreviousStatus  string    `json:"previous_status,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	TotalPriceCents int64     `json:"total_price_cents"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type PaymentEvent struct {
	PaymentID   uuid.UUID  `json:"payment_id"`
	BookingID   uuid.UUID  `json:"booking_id"`
	RenterID    uuid.UUID  `json:"renter_id"`
	PayeeID     uuid.UUID  `json:"payee_id"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

type ReviewEvent struct {
	ReviewID      uuid.UUID `json:"review_id"`
	RevieweeID    uuid.UUID `json:"reviewee_id"`
	Rating        int       `json:"rating"`
	ReviewCount   int64     `json:"review_count"`
	AverageRating *float64  `json:"average_rating"`
	OccurredAt    time.Time `json:"occurred_at"`
}
