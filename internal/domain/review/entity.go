package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is immutable once created.
type Review struct {
	id         uuid.UUID
	bookingID  *uuid.UUID
	reviewerID uuid.UUID
	revieweeID uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
}

func NewReview(reviewerID, revieweeID uuid.UUID, bookingID *uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if reviewerID == uuid.Nil {
		return nil, ErrMissingReviewer
	}
	if revieweeID == uuid.Nil {
		return nil, ErrMissingReviewee
	}
	if reviewerID == revieweeID {
		return nil, ErrSelfReview
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		bookingID:  bookingID,
		reviewerID: reviewerID,
		revieweeID: revieweeID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) BookingID() *uuid.UUID { return r.bookingID }
func (r *Review) ReviewerID() uuid.UUID { return r.reviewerID }
func (r *Review) RevieweeID() uuid.UUID { return r.revieweeID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
