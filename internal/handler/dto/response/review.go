package response

import (
	"time"

	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID         uuid.UUID  `json:"id"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	ReviewerID uuid.UUID  `json:"reviewer_id"`
	RevieweeID uuid.UUID  `json:"reviewee_id"`
	Rating     int32      `json:"rating"`
	Comment    string     `json:"comment"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromReviewList(views []*queries.ReviewView, next *queries.Cursor) (*ListResponse[*ReviewResponse], error) {
	return fromList[ReviewResponse](views, next)
}

// RatingResponse keeps average null when there are no reviews.
type RatingResponse struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Average   *float64  `json:"average"`
	Count     int64     `json:"count"`
	Display   string    `json:"display"`
}

func FromRatingView(v *queries.RatingView) *RatingResponse {
	return &RatingResponse{
		SubjectID: v.SubjectID,
		Average:   v.Rating.Average,
		Count:     v.Rating.Count,
		Display:   v.Rating.Display,
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
