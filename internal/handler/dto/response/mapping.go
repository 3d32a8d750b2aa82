package response

import (
	"parkshare/internal/pkg/errs"
	"parkshare/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ListResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func fromView[T any](view any) (*T, error) {
	var out T
	if err := copier.Copy(&out, view); err != nil {
		return nil, errs.Wrap(err, "failed to map read model")
	}
	return &out, nil
}

func fromList[T any, V any](views []V, next *queries.Cursor) (*ListResponse[*T], error) {
	items := make([]*T, 0, len(views))
	for _, v := range views {
		item, err := fromView[T](v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	resp := &ListResponse[*T]{Items: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}
