package readstore

import (
	"context"
	"log/slog"
	"time"

	"parkshare/internal/domain/review"
	"parkshare/internal/infra"
	"parkshare/internal/infra/repository/converter"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	ListReviewsByRevieweeFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByRevieweeFirstPageParams) ([]sqlc.Reviews, error)
	ListReviewsByRevieweeKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByRevieweeKeysetParams) ([]sqlc.Reviews, error)
	ListRatingsByReviewee(ctx context.Context, db sqlc.DBTX, revieweeID uuid.UUID) ([]int32, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX, logger *slog.Logger) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ReviewReadStore) FindByRevieweeFirstPage(ctx context.Context, revieweeID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByRevieweeFirstPage(ctx, r.db, sqlc.ListReviewsByRevieweeFirstPageParams{
		RevieweeID: revieweeID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to get reviews first page by reviewee", err)
	}
	return reviewViews(rows), nil
}

func (r *ReviewReadStore) FindByRevieweeKeyset(ctx context.Context, revieweeID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByRevieweeKeyset(ctx, r.db, sqlc.ListReviewsByRevieweeKeysetParams{
		RevieweeID: revieweeID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to get reviews keyset by reviewee", err)
	}
	return reviewViews(rows), nil
}

func (r *ReviewReadStore) FindRatingsByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]review.Rating, error) {
	rows, err := r.queries.ListRatingsByReviewee(ctx, r.db, revieweeID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to list ratings by reviewee", err)
	}
	ratings, err := converter.RatingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode ratings", err)
	}
	return ratings, nil
}

func reviewViews(rows []sqlc.Reviews) []*queries.ReviewView {
	views := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ReviewView{
			ID:         row.ID,
			BookingID:  pgconv.UUIDPtrFromPgtype(row.BookingID),
			ReviewerID: row.ReviewerID,
			RevieweeID: row.RevieweeID,
			Rating:     row.Rating,
			Comment:    row.Comment,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views
}
