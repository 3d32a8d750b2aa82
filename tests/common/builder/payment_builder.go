//go:build unit || e2e

package builder

import (
	"time"

	"parkshare/internal/domain/payment"
	reqdto "parkshare/internal/handler/dto/request"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	BookingID   uuid.UUID
	RenterID    uuid.UUID
	PayeeID     uuid.UUID
	AmountCents int64
	CreatedAt   time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		BookingID:   uuid.New(),
		RenterID:    uuid.New(),
		PayeeID:     uuid.New(),
		AmountCents: 1200,
		CreatedAt:   time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	return payment.NewPayment(p.BookingID, p.RenterID, p.PayeeID, p.AmountCents, p.CreatedAt)
}

func (p *PaymentBuilder) BuildCreateRequestDTO() reqdto.CreatePaymentRequest {
	return reqdto.CreatePaymentRequest{
		BookingID:   p.BookingID,
		AmountCents: p.AmountCents,
	}
}

func (p *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:          uuid.New(),
		BookingID:   p.BookingID,
		RenterID:    p.RenterID,
		PayeeID:     p.PayeeID,
		AmountCents: p.AmountCents,
		Status:      payment.StatusPending.String(),
		CreatedAt:   p.CreatedAt,
	}
}
