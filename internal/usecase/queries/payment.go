package queries

import (
	"context"

	"parkshare/internal/domain/payment"
	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	FindPending(ctx context.Context) ([]*PaymentView, error)
}

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	payments PaymentReadStore
}

func NewPaymentQueries(payments PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{payments: payments}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	view, err := q.payments.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}
	return view, nil
}
