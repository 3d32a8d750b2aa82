package repository

import (
	"context"
	"log/slog"
	"time"

	"parkshare/internal/domain/review"
	"parkshare/internal/infra"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RatingStatsWriteQueries interface {
	UpsertRatingStats(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRatingStatsParams) error
}

type RatingStatsRepository struct {
	queries RatingStatsWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewRatingStatsRepository(queries RatingStatsWriteQueries, db sqlc.DBTX, logger *slog.Logger) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries, db: db, logger: logger}
}

func (r *RatingStatsRepository) Save(ctx context.Context, subjectID uuid.UUID, agg review.AggregateRating, now time.Time) error {
	err := r.queries.UpsertRatingStats(ctx, r.db, sqlc.UpsertRatingStatsParams{
		SubjectID:   subjectID,
		ReviewCount: agg.Count(),
		RatingSum:   agg.Sum(),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to save rating stats", err)
	}
	return nil
}
