package readstore

import (
	"context"
	"log/slog"

	"parkshare/internal/infra"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	ListPendingPayments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX, logger *slog.Logger) *PaymentReadStore {
	return &PaymentReadStore{queries: queries, db: db, logger: logger}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to get payment view by id", err)
	}
	return paymentView(row), nil
}

func (r *PaymentReadStore) FindPending(ctx context.Context) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPendingPayments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to list pending payments", err)
	}
	views := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		views[i] = paymentView(row)
	}
	return views, nil
}

func paymentView(row sqlc.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		ID:          row.ID,
		BookingID:   row.BookingID,
		RenterID:    row.RenterID,
		PayeeID:     row.PayeeID,
		AmountCents: row.AmountCents,
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		CompletedAt: pgconv.TimePtrFromPgtype(row.CompletedAt),
	}
}
