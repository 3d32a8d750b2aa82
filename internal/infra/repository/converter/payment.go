package converter

import (
	"parkshare/internal/domain/payment"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:          p.ID(),
		BookingID:   p.BookingID(),
		RenterID:    p.RenterID(),
		PayeeID:     p.PayeeID(),
		AmountCents: p.AmountCents(),
		Status:      p.Status().String(),
		CompletedAt: pgconv.TimePtrToPgtype(p.CompletedAt()),
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(
		row.ID, row.BookingID, row.RenterID, row.PayeeID,
		row.AmountCents,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
	)
}
