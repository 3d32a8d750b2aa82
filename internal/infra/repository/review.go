package repository

import (
	"context"
	"log/slog"

	"parkshare/internal/domain/review"
	"parkshare/internal/infra"
	"parkshare/internal/infra/repository/converter"
	sqlc "parkshare/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) error
	ListRatingsByReviewee(ctx context.Context, db sqlc.DBTX, revieweeID uuid.UUID) ([]int32, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX, logger *slog.Logger) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, r.db, converter.ReviewToCreateParams(rev)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) ListRatingsByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]review.Rating, error) {
	rows, err := r.queries.ListRatingsByReviewee(ctx, r.db, revieweeID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to list ratings", err)
	}
	ratings, err := converter.RatingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode ratings", err)
	}
	return ratings, nil
}
