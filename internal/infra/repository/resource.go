package repository

import (
	"context"
	"log/slog"

	"parkshare/internal/domain/resource"
	"parkshare/internal/infra"
	"parkshare/internal/infra/repository/converter"
	sqlc "parkshare/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	GetResourceByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error
	UpdateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceParams) error
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewResourceRepository(queries ResourceWriteQueries, db sqlc.DBTX, logger *slog.Logger) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// FindByID locks the row; writers that load a resource go on to change it or
// to book against it.
func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to get resource", err)
	}
	return converter.ResourceFromRow(row), nil
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	if err := r.queries.CreateResource(ctx, r.db, converter.ResourceToCreateParams(res)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	if err := r.queries.UpdateResource(ctx, r.db, converter.ResourceToUpdateParams(res)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to update resource", err)
	}
	return nil
}
