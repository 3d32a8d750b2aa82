package request

import (
	"parkshare/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	RevieweeID uuid.UUID  `json:"reviewee_id" binding:"required"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	Rating     int        `json:"rating" binding:"required,min=1,max=5"`
	Comment    string     `json:"comment" binding:"max=1000"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		RevieweeID: r.RevieweeID,
		BookingID:  r.BookingID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}
