package queries

import (
	"context"
	"time"

	"parkshare/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByRevieweeFirstPage(ctx context.Context, revieweeID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByRevieweeKeyset(ctx context.Context, revieweeID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindRatingsByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]review.Rating, error)
}

type ReviewQueries interface {
	ListByReviewee(ctx context.Context, revieweeID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	AggregateRating(ctx context.Context, subjectID uuid.UUID) (*RatingView, error)
}

type reviewQueriesImpl struct {
	reviews ReviewReadStore
}

func NewReviewQueries(reviews ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews}
}

func (q *reviewQueriesImpl) ListByReviewee(ctx context.Context, revieweeID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)
	lastCreatedAt, lastID, hasCursor, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	var rows []*ReviewView
	if hasCursor {
		rows, err = q.reviews.FindByRevieweeKeyset(ctx, revieweeID, lastCreatedAt, lastID, int32(limit+1))
	} else {
		rows, err = q.reviews.FindByRevieweeFirstPage(ctx, revieweeID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := paginate(rows, limit, func(v *ReviewView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}

// AggregateRating folds the current review set on every call. A subject with no
// reviews gets the no-rating value, not an error.
func (q *reviewQueriesImpl) AggregateRating(ctx context.Context, subjectID uuid.UUID) (*RatingView, error) {
	ratings, err := q.reviews.FindRatingsByReviewee(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return &RatingView{
		SubjectID: subjectID,
		Rating:    NewRatingSummary(review.Aggregate(ratings)),
	}, nil
}
