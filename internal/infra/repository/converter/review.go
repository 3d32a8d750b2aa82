package converter

import (
	"parkshare/internal/domain/review"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:         r.ID(),
		BookingID:  pgconv.UUIDPtrToPgtype(r.BookingID()),
		ReviewerID: r.ReviewerID(),
		RevieweeID: r.RevieweeID(),
		Rating:     int32(r.Rating().Value()), // #nosec G115 -- 1..5
		Comment:    r.Comment().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RatingsFromRows(rows []int32) ([]review.Rating, error) {
	ratings := make([]review.Rating, 0, len(rows))
	for _, v := range rows {
		r, err := review.NewRating(int(v))
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	return ratings, nil
}
