package readstore

import (
	"context"
	"log/slog"
	"time"

	"parkshare/internal/domain/review"
	"parkshare/internal/infra"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceReadQueries interface {
	GetResourceViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetResourceViewByIDRow, error)
	ListResourcesFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesFirstPageParams) ([]sqlc.ListResourcesFirstPageRow, error)
	ListResourcesKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesKeysetParams) ([]sqlc.ListResourcesKeysetRow, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewResourceReadStore(queries ResourceReadQueries, db sqlc.DBTX, logger *slog.Logger) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to get resource view by id", err)
	}
	return r.toView(row)
}

func (r *ResourceReadStore) FindFirstPage(ctx context.Context, filter queries.ResourceFilter, limit int32) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResourcesFirstPage(ctx, r.db, sqlc.ListResourcesFirstPageParams{
		OwnerID:            pgconv.UUIDPtrToPgtype(filter.OwnerID),
		IncludeUnavailable: filter.IncludeUnavailable,
		Limit:              limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to list resources first page", err)
	}
	views := make([]*queries.ResourceView, 0, len(rows))
	for _, row := range rows {
		v, err := r.toView(sqlc.GetResourceViewByIDRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *ResourceReadStore) FindKeyset(ctx context.Context, filter queries.ResourceFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResourcesKeyset(ctx, r.db, sqlc.ListResourcesKeysetParams{
		OwnerID:            pgconv.UUIDPtrToPgtype(filter.OwnerID),
		IncludeUnavailable: filter.IncludeUnavailable,
		CreatedAt:          pgconv.TimeToPgtype(lastCreatedAt),
		ID:                 lastID,
		Limit:              limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to list resources keyset", err)
	}
	views := make([]*queries.ResourceView, 0, len(rows))
	for _, row := range rows {
		v, err := r.toView(sqlc.GetResourceViewByIDRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// toView folds the owner's rating_stats row in; owners never reviewed have
// NULL stats from the left join.
func (r *ResourceReadStore) toView(row sqlc.GetResourceViewByIDRow) (*queries.ResourceView, error) {
	agg, err := review.ReconstructAggregate(pgconv.Int64FromPgtype(row.ReviewCount), pgconv.Int64FromPgtype(row.RatingSum))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "inconsistent rating stats", err)
	}
	return &queries.ResourceView{
		ID:                row.ID,
		OwnerID:           row.OwnerID,
		Title:             row.Title,
		Description:       row.Description,
		Address:           row.Address,
		Latitude:          pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:         pgconv.Float64PtrFromPgtype(row.Longitude),
		PricePerHourCents: row.PricePerHourCents,
		PricePerDayCents:  row.PricePerDayCents,
		IsAvailable:       row.IsAvailable,
		Rating:            queries.NewRatingSummary(agg),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
