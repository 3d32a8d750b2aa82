package response

import (
	"time"

	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   uuid.UUID  `json:"booking_id"`
	RenterID    uuid.UUID  `json:"renter_id"`
	PayeeID     uuid.UUID  `json:"payee_id"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func FromPaymentView(v *queries.PaymentView) (*PaymentResponse, error) {
	return fromView[PaymentResponse](v)
}
