package queries

import (
	"time"

	"parkshare/internal/domain/review"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	RenterID        uuid.UUID `json:"renter_id"`
	RenterName      string    `json:"renter_name"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingFilter struct {
	ResourceID *uuid.UUID
	RenterID   *uuid.UUID
}

type ConflictCheck struct {
	Conflict             bool       `json:"conflict"`
	ConflictingBookingID *uuid.UUID `json:"conflicting_booking_id,omitempty"`
}

type PaymentView struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   uuid.UUID  `json:"booking_id"`
	RenterID    uuid.UUID  `json:"renter_id"`
	PayeeID     uuid.UUID  `json:"payee_id"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ReviewView struct {
	ID         uuid.UUID  `json:"id"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	ReviewerID uuid.UUID  `json:"reviewer_id"`
	RevieweeID uuid.UUID  `json:"reviewee_id"`
	Rating     int32      `json:"rating"`
	Comment    string     `json:"comment"`
	CreatedAt  time.Time  `json:"created_at"`
}

// RatingSummary renders an aggregate. Average is nil when there are no reviews.
type RatingSummary struct {
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
	Display string   `json:"display"`
}

func NewRatingSummary(agg review.AggregateRating) RatingSummary {
	summary := RatingSummary{Count: agg.Count(), Display: agg.Display()}
	if avg, ok := agg.Rounded(); ok {
		summary.Average = &avg
	}
	return summary
}

type RatingView struct {
	SubjectID uuid.UUID     `json:"subject_id"`
	Rating    RatingSummary `json:"rating"`
}

type ResourceView struct {
	ID                uuid.UUID     `json:"id"`
	OwnerID           uuid.UUID     `json:"owner_id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Address           string        `json:"address"`
	Latitude          *float64      `json:"latitude,omitempty"`
	Longitude         *float64      `json:"longitude,omitempty"`
	PricePerHourCents int64         `json:"price_per_hour_cents"`
	PricePerDayCents  int64         `json:"price_per_day_cents"`
	IsAvailable       bool          `json:"is_available"`
	Rating            RatingSummary `json:"rating"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type ResourceFilter struct {
	OwnerID *uuid.UUID
	// IncludeUnavailable lists resources whose availability flag is off.
	IncludeUnavailable bool
}
