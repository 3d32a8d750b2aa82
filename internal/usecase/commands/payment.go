package commands

import (
	"context"
	"log/slog"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/payment"
	"parkshare/internal/domain/resource"
	"parkshare/internal/pkg/clock"
	"parkshare/internal/pkg/config"
	"parkshare/internal/pkg/errs"
	"parkshare/internal/usecase/queries"
	"parkshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID uuid.UUID
	// PayeeID defaults to the owner of the booked resource when zero.
	PayeeID     uuid.UUID
	AmountCents int64
}

type CreatePaymentResult struct {
	PaymentID uuid.UUID
}

type PaymentCommands interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest, renterID uuid.UUID) (*CreatePaymentResult, error)
	// SettlePayment is the delayed confirmation. Missing or already settled
	// payments are a no-op.
	SettlePayment(ctx context.Context, paymentID uuid.UUID) error
	// ResumePendingSettlements reschedules every pending payment, typically at boot.
	ResumePendingSettlements(ctx context.Context) (int, error)
}

type paymentUseCaseImpl struct {
	uow       shared.UnitOfWork
	payments  queries.PaymentReadStore
	scheduler shared.TaskScheduler
	clock     clock.Clock
	delay     time.Duration
	logger    *slog.Logger
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	payments queries.PaymentReadStore,
	scheduler shared.TaskScheduler,
	clk clock.Clock,
	cfg config.PaymentConfig,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:       uow,
		payments:  payments,
		scheduler: scheduler,
		clock:     clk,
		delay:     cfg.ConfirmationDelay,
		logger:    logger,
	}
}

func (uc *paymentUseCaseImpl) CreatePayment(ctx context.Context, req CreatePaymentRequest, renterID uuid.UUID) (*CreatePaymentResult, error) {
	if req.AmountCents <= 0 {
		return nil, payment.ErrNonPositiveAmount
	}

	var created *payment.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, req.BookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}
		if b.RenterID() != renterID {
			return payment.ErrNotBookingRenter
		}
		if b.TotalPrice().Cents() != req.AmountCents {
			return payment.ErrAmountMismatch
		}

		res, err := tx.Resources().FindByID(ctx, b.ResourceID())
		if err != nil {
			return notFoundAs(err, resource.ErrResourceNotFound)
		}
		payeeID := req.PayeeID
		if payeeID == uuid.Nil {
			payeeID = res.OwnerID()
		}
		if payeeID != res.OwnerID() {
			return payment.ErrPayeeMismatch
		}

		now := uc.clock.Now()
		p, err := payment.NewPayment(b.ID(), renterID, payeeID, req.AmountCents, now)
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		created = p
		return enqueuePaymentEvent(ctx, tx, shared.TopicPaymentCreated, p, now)
	})
	if err != nil {
		return nil, err
	}

	uc.scheduleSettlement(created.ID(), uc.delay)
	uc.logger.Info("payment created",
		"payment_id", created.ID(),
		"booking_id", created.BookingID(),
		"settles_in", uc.delay)
	return &CreatePaymentResult{PaymentID: created.ID()}, nil
}

func (uc *paymentUseCaseImpl) SettlePayment(ctx context.Context, paymentID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().FindByID(ctx, paymentID)
		if err != nil {
			return notFoundAs(err, payment.ErrPaymentNotFound)
		}
		now := uc.clock.Now()
		if err := p.Complete(now); err != nil {
			return err
		}
		applied, err := tx.Payments().SaveCompletion(ctx, p)
		if err != nil {
			return err
		}
		if !applied {
			return payment.ErrAlreadySettled
		}
		return enqueuePaymentEvent(ctx, tx, shared.TopicPaymentCompleted, p, now)
	})

	switch {
	case err == nil:
		uc.logger.Info("payment settled", "payment_id", paymentID)
		return nil
	case errs.Is(err, payment.ErrPaymentNotFound):
		uc.logger.Warn("payment to settle no longer exists", "payment_id", paymentID)
		return nil
	case errs.Is(err, payment.ErrAlreadySettled):
		uc.logger.Debug("payment already settled", "payment_id", paymentID)
		return nil
	default:
		return err
	}
}

func (uc *paymentUseCaseImpl) ResumePendingSettlements(ctx context.Context) (int, error) {
	pending, err := uc.payments.FindPending(ctx)
	if err != nil {
		return 0, err
	}

	now := uc.clock.Now()
	for _, p := range pending {
		remaining := p.CreatedAt.Add(uc.delay).Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		uc.scheduleSettlement(p.ID, remaining)
	}
	if len(pending) > 0 {
		uc.logger.Info("rescheduled pending payment settlements", "count", len(pending))
	}
	return len(pending), nil
}

func (uc *paymentUseCaseImpl) scheduleSettlement(paymentID uuid.UUID, delay time.Duration) {
	uc.scheduler.Schedule(settlementTaskKey(paymentID), delay, func(ctx context.Context) {
		if err := uc.SettlePayment(ctx, paymentID); err != nil {
			uc.logger.Error("payment settlement failed",
				"payment_id", paymentID,
				"error", err)
		}
	})
}

func settlementTaskKey(paymentID uuid.UUID) string {
	return "payment-settlement:" + paymentID.String()
}

func enqueuePaymentEvent(ctx context.Context, tx shared.Tx, topic string, p *payment.Payment, now time.Time) error {
	event, err := shared.NewOutboxEvent(topic, p.BookingID().String(), shared.PaymentEvent{
		PaymentID:   p.ID(),
		BookingID:   p.BookingID(),
		RenterID:    p.RenterID(),
		PayeeID:     p.PayeeID(),
		AmountCents: p.AmountCents(),
		Status:      p.Status().String(),
		CompletedAt: p.CompletedAt(),
		OccurredAt:  now,
	}, now)
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, event)
}
