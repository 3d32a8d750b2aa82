//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/payment"
	"parkshare/internal/infra/memstore"
	"parkshare/internal/pkg/config"
	"parkshare/internal/pkg/errs"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const confirmationDelay = 2 * time.Second

type paymentFixture struct {
	*fixture
	scheduler *fakeScheduler
	uc        commands.PaymentCommands
	ownerID   uuid.UUID
	renterID  uuid.UUID
	bookingID uuid.UUID
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := newFixture()
	pf := &paymentFixture{
		fixture:   f,
		scheduler: newFakeScheduler(),
		ownerID:   uuid.New(),
		renterID:  uuid.New(),
	}
	resourceID := f.seedResource(t, pf.ownerID)
	created, err := commands.NewBookingUseCase(f.store, f.clock, discardLogger()).
		CreateBooking(context.Background(), slotReq(resourceID, 0, time.Hour), pf.renterID)
	require.NoError(t, err)
	pf.bookingID = created.BookingID

	pf.uc = commands.NewPaymentUseCase(
		f.store,
		memstore.NewPaymentReadStore(f.store),
		pf.scheduler,
		f.clock,
		config.PaymentConfig{ConfirmationDelay: confirmationDelay},
		discardLogger(),
	)
	return pf
}

func (pf *paymentFixture) payment(t *testing.T, id uuid.UUID) (string, *time.Time) {
	t.Helper()
	view, err := memstore.NewPaymentReadStore(pf.store).FindByID(context.Background(), id)
	require.NoError(t, err)
	return view.Status, view.CompletedAt
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pending payment to the owner, settlement scheduled", func(t *testing.T) {
		pf := newPaymentFixture(t)

		result, err := pf.uc.CreatePayment(ctx, commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: 1200}, pf.renterID)
		require.NoError(t, err)

		view, err := memstore.NewPaymentReadStore(pf.store).FindByID(ctx, result.PaymentID)
		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
		assert.Nil(t, view.CompletedAt)
		assert.Equal(t, pf.ownerID, view.PayeeID)
		assert.Equal(t, pf.renterID, view.RenterID)

		task := pf.scheduler.get(t, settlementKey(result.PaymentID))
		assert.Equal(t, confirmationDelay, task.delay)
		assert.Contains(t, pf.topics(), shared.TopicPaymentCreated)
	})

	t.Run("rejections", func(t *testing.T) {
		pf := newPaymentFixture(t)

		testCases := []struct {
			name     string
			req      commands.CreatePaymentRequest
			renterID uuid.UUID
			errIs    error
		}{
			{name: "zero amount", req: commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: 0}, renterID: pf.renterID, errIs: payment.ErrNonPositiveAmount},
			{name: "negative amount", req: commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: -50}, renterID: pf.renterID, errIs: payment.ErrNonPositiveAmount},
			{name: "unknown booking", req: commands.CreatePaymentRequest{BookingID: uuid.New(), AmountCents: 1200}, renterID: pf.renterID, errIs: booking.ErrBookingNotFound},
			{name: "not the renter", req: commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: 1200}, renterID: uuid.New(), errIs: payment.ErrNotBookingRenter},
			{name: "amount differs from booking total", req: commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: 50}, renterID: pf.renterID, errIs: payment.ErrAmountMismatch},
			{name: "payee is not the owner", req: commands.CreatePaymentRequest{BookingID: pf.bookingID, PayeeID: uuid.New(), AmountCents: 1200}, renterID: pf.renterID, errIs: payment.ErrPayeeMismatch},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := pf.uc.CreatePayment(ctx, tc.req, tc.renterID)
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			})
		}
		assert.Empty(t, pf.scheduler.tasks)
	})
}

func TestSettlePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("delayed task completes the payment once", func(t *testing.T) {
		pf := newPaymentFixture(t)
		result, err := pf.uc.CreatePayment(ctx, commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: 1200}, pf.renterID)
		require.NoError(t, err)

		pf.clock.Add(confirmationDelay)
		pf.scheduler.get(t, settlementKey(result.PaymentID)).run(ctx)

		status, completedAt := pf.payment(t, result.PaymentID)
		assert.Equal(t, "completed", status)
		require.NotNil(t, completedAt)
		assert.True(t, completedAt.Equal(testNow.Add(confirmationDelay)))

		// firing again is a no-op
		pf.clock.Add(time.Minute)
		require.NoError(t, pf.uc.SettlePayment(ctx, result.PaymentID))
		_, again := pf.payment(t, result.PaymentID)
		assert.True(t, completedAt.Equal(*again), "completion timestamp must not move")

		var completedEvents int
		for _, topic := range pf.topics() {
			if topic == shared.TopicPaymentCompleted {
				completedEvents++
			}
		}
		assert.Equal(t, 1, completedEvents)
	})

	t.Run("missing payment is a no-op", func(t *testing.T) {
		pf := newPaymentFixture(t)
		assert.NoError(t, pf.uc.SettlePayment(ctx, uuid.New()))
	})

	t.Run("settling does not touch the booking", func(t *testing.T) {
		pf := newPaymentFixture(t)
		result, err := pf.uc.CreatePayment(ctx, commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: 1200}, pf.renterID)
		require.NoError(t, err)
		require.NoError(t, pf.uc.SettlePayment(ctx, result.PaymentID))

		view, err := memstore.NewBookingReadStore(pf.store).FindByID(ctx, pf.bookingID)
		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
	})
}

func TestResumePendingSettlements(t *testing.T) {
	ctx := context.Background()
	pf := newPaymentFixture(t)

	first, err := pf.uc.CreatePayment(ctx, commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: 1200}, pf.renterID)
	require.NoError(t, err)
	settled, err := pf.uc.CreatePayment(ctx, commands.CreatePaymentRequest{BookingID: pf.bookingID, AmountCents: 1200}, pf.renterID)
	require.NoError(t, err)
	require.NoError(t, pf.uc.SettlePayment(ctx, settled.PaymentID))

	// a restart after half the delay, with nothing scheduled
	pf.scheduler = newFakeScheduler()
	pf.uc = commands.NewPaymentUseCase(pf.store, memstore.NewPaymentReadStore(pf.store), pf.scheduler, pf.clock,
		config.PaymentConfig{ConfirmationDelay: confirmationDelay}, discardLogger())
	pf.clock.Add(confirmationDelay / 2)

	n, err := pf.uc.ResumePendingSettlements(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, confirmationDelay/2, pf.scheduler.get(t, settlementKey(first.PaymentID)).delay)

	// overdue payments fire immediately
	pf.clock.Add(time.Hour)
	_, err = pf.uc.ResumePendingSettlements(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), pf.scheduler.get(t, settlementKey(first.PaymentID)).delay)
}
