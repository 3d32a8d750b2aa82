package request

import (
	"parkshare/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID   uuid.UUID  `json:"booking_id" binding:"required"`
	PayeeID     *uuid.UUID `json:"payee_id,omitempty"`
	AmountCents int64      `json:"amount_cents"`
}

func (r CreatePaymentRequest) ToCommand() commands.CreatePaymentRequest {
	cmd := commands.CreatePaymentRequest{
		BookingID:   r.BookingID,
		AmountCents: r.AmountCents,
	}
	if r.PayeeID != nil {
		cmd.PayeeID = *r.PayeeID
	}
	return cmd
}
