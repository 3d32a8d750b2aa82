//go:build unit || e2e

package builder

import (
	"time"

	domreview "parkshare/internal/domain/review"
	reqdto "parkshare/internal/handler/dto/request"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	BookingID  *uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ReviewerID: uuid.New(),
		RevieweeID: uuid.New(),
		Rating:     5,
		Comment:    "Easy to find, well lit.",
		CreatedAt:  time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithReviewerID(id uuid.UUID) *ReviewBuilder {
	r.ReviewerID = id
	return r
}

func (r *ReviewBuilder) WithRevieweeID(id uuid.UUID) *ReviewBuilder {
	r.RevieweeID = id
	return r
}

func (r *ReviewBuilder) WithBookingID(id uuid.UUID) *ReviewBuilder {
	r.BookingID = &id
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ReviewerID, r.RevieweeID, r.BookingID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequest() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		RevieweeID: r.RevieweeID,
		BookingID:  r.BookingID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		RevieweeID: r.RevieweeID,
		BookingID:  r.BookingID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         uuid.New(),
		BookingID:  r.BookingID,
		ReviewerID: r.ReviewerID,
		RevieweeID: r.RevieweeID,
		Rating:     int32(r.Rating),
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
