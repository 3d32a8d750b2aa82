package repository

import (
	"context"
	"log/slog"

	"parkshare/internal/domain/payment"
	"parkshare/internal/infra"
	"parkshare/internal/infra/repository/converter"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	GetPaymentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	CompletePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CompletePaymentParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX, logger *slog.Logger) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to get payment", err)
	}
	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode payment", err)
	}
	return p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) SaveCompletion(ctx context.Context, p *payment.Payment) (bool, error) {
	if p.CompletedAt() == nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "payment has no completion time", nil)
	}
	rows, err := r.queries.CompletePayment(ctx, r.db, sqlc.CompletePaymentParams{
		ID:          p.ID(),
		CompletedAt: pgconv.TimeToPgtype(*p.CompletedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to complete payment", err)
	}
	return rows == 1, nil
}
