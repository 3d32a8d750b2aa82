package request

import (
	"time"

	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID      uuid.UUID `json:"resource_id" binding:"required"`
	RenterName      string    `json:"renter_name" binding:"required,notblank,max=100"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	EndTime         time.Time `json:"end_time" binding:"required"`
	TotalPriceCents int64     `json:"total_price_cents" binding:"gte=0"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ResourceID:      r.ResourceID,
		RenterName:      r.RenterName,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		TotalPriceCents: r.TotalPriceCents,
	}
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

type ListBookingsQuery struct {
	PageQuery
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	RenterID   string `form:"renter_id" binding:"omitempty,uuid"`
}

func (q ListBookingsQuery) Filter() (queries.BookingFilter, error) {
	resourceID, err := optionalID(q.ResourceID)
	if err != nil {
		return queries.BookingFilter{}, err
	}
	renterID, err := optionalID(q.RenterID)
	if err != nil {
		return queries.BookingFilter{}, err
	}
	return queries.BookingFilter{ResourceID: resourceID, RenterID: renterID}, nil
}

// ConflictQuery takes RFC 3339 instants.
type ConflictQuery struct {
	Start time.Time `form:"start" binding:"required"`
	End   time.Time `form:"end" binding:"required"`
}
