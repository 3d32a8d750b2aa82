package response

import (
	"time"

	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
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

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	return fromView[BookingResponse](v)
}

func FromBookingList(views []*queries.BookingView, next *queries.Cursor) (*ListResponse[*BookingResponse], error) {
	return fromList[BookingResponse](views, next)
}

type ConflictResponse struct {
	ResourceID           uuid.UUID  `json:"resource_id"`
	StartTime            time.Time  `json:"start_time"`
	EndTime              time.Time  `json:"end_time"`
	Conflict             bool       `json:"conflict"`
	ConflictingBookingID *uuid.UUID `json:"conflicting_booking_id,omitempty"`
}

func FromConflictCheck(resourceID uuid.UUID, start, end time.Time, c *queries.ConflictCheck) *ConflictResponse {
	return &ConflictResponse{
		ResourceID:           resourceID,
		StartTime:            start.UTC(),
		EndTime:              end.UTC(),
		Conflict:             c.Conflict,
		ConflictingBookingID: c.ConflictingBookingID,
	}
}
