package request

import (
	"parkshare/internal/pkg/errs"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidID = errs.NewKind("invalid id", errs.ErrValidation)

type PageQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	After string `form:"after"`
}

func (p PageQuery) Cursor() *queries.Cursor {
	if p.After == "" {
		return nil
	}
	return &queries.Cursor{After: p.After}
}

// optionalID parses a query parameter that was already checked by the uuid tag.
func optionalID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, ErrInvalidID
	}
	return &id, nil
}
