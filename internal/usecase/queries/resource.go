package queries

import (
	"context"
	"time"

	"parkshare/internal/domain/resource"
	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	FindFirstPage(ctx context.Context, filter ResourceFilter, limit int32) ([]*ResourceView, error)
	FindKeyset(ctx context.Context, filter ResourceFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ResourceView, error)
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter ResourceFilter, cursor *Cursor, limit int) ([]*ResourceView, *Cursor, error)
}

type resourceQueriesImpl struct {
	resources ResourceReadStore
}

func NewResourceQueries(resources ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{resources: resources}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	view, err := q.resources.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, resource.ErrResourceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *resourceQueriesImpl) List(ctx context.Context, filter ResourceFilter, cursor *Cursor, limit int) ([]*ResourceView, *Cursor, error) {
	limit = ValidateLimit(limit)
	lastCreatedAt, lastID, hasCursor, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	var rows []*ResourceView
	if hasCursor {
		rows, err = q.resources.FindKeyset(ctx, filter, lastCreatedAt, lastID, int32(limit+1))
	} else {
		rows, err = q.resources.FindFirstPage(ctx, filter, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := paginate(rows, limit, func(v *ResourceView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}
