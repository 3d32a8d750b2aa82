//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/resource"
	"parkshare/internal/domain/user"
	"parkshare/internal/infra/memstore"
	"parkshare/internal/pkg/errs"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/shared"
	"parkshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotStart = time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)

func slotReq(resourceID uuid.UUID, startOffset, endOffset time.Duration) commands.CreateBookingRequest {
	return builder.NewBookingBuilder().
		WithResourceID(resourceID).
		WithSlot(slotStart.Add(startOffset), slotStart.Add(endOffset)).
		BuildCreateRequest()
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stores a pending booking and a booking.created event", func(t *testing.T) {
		f := newFixture()
		resourceID := f.seedResource(t, uuid.New())
		uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())
		renterID := uuid.New()

		result, err := uc.CreateBooking(ctx, slotReq(resourceID, 0, 2*time.Hour), renterID)
		require.NoError(t, err)

		view, err := memstore.NewBookingReadStore(f.store).FindByID(ctx, result.BookingID)
		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, renterID, view.RenterID)
		assert.Equal(t, int64(1200), view.TotalPriceCents)
		assert.Equal(t, []string{shared.TopicBookingCreated}, f.topics())
	})

	t.Run("touching slots do not conflict", func(t *testing.T) {
		f := newFixture()
		resourceID := f.seedResource(t, uuid.New())
		uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())

		_, err := uc.CreateBooking(ctx, slotReq(resourceID, 0, time.Hour), uuid.New())
		require.NoError(t, err)
		_, err = uc.CreateBooking(ctx, slotReq(resourceID, time.Hour, 2*time.Hour), uuid.New())
		require.NoError(t, err)
		_, err = uc.CreateBooking(ctx, slotReq(resourceID, -time.Hour, 0), uuid.New())
		require.NoError(t, err)
	})

	t.Run("overlap reports the conflicting booking", func(t *testing.T) {
		f := newFixture()
		resourceID := f.seedResource(t, uuid.New())
		uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())

		first, err := uc.CreateBooking(ctx, slotReq(resourceID, 0, 2*time.Hour), uuid.New())
		require.NoError(t, err)

		for name, req := range map[string]commands.CreateBookingRequest{
			"partial overlap": slotReq(resourceID, time.Hour, 3*time.Hour),
			"contained":       slotReq(resourceID, 30*time.Minute, 90*time.Minute),
			"containing":      slotReq(resourceID, -time.Hour, 3*time.Hour),
			"identical":       slotReq(resourceID, 0, 2*time.Hour),
		} {
			t.Run(name, func(t *testing.T) {
				_, err := uc.CreateBooking(ctx, req, uuid.New())
				require.True(t, errs.Is(err, errs.ErrBookingConflict), "got %v", err)
				id, ok := booking.ConflictingBookingID(err)
				require.True(t, ok)
				assert.Equal(t, first.BookingID, id)
			})
		}
	})

	t.Run("other resources are independent", func(t *testing.T) {
		f := newFixture()
		owner := uuid.New()
		a, b := f.seedResource(t, owner), f.seedResource(t, owner)
		uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())

		_, err := uc.CreateBooking(ctx, slotReq(a, 0, time.Hour), uuid.New())
		require.NoError(t, err)
		_, err = uc.CreateBooking(ctx, slotReq(b, 0, time.Hour), uuid.New())
		require.NoError(t, err)
	})

	t.Run("cancelling frees the slot", func(t *testing.T) {
		f := newFixture()
		resourceID := f.seedResource(t, uuid.New())
		uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())
		renter := commands.Actor{ID: uuid.New(), Role: user.RoleRenter}

		first, err := uc.CreateBooking(ctx, slotReq(resourceID, 0, time.Hour), renter.ID)
		require.NoError(t, err)
		_, err = uc.CreateBooking(ctx, slotReq(resourceID, 0, time.Hour), uuid.New())
		require.True(t, errs.Is(err, errs.ErrBookingConflict))

		require.NoError(t, uc.TransitionBooking(ctx, first.BookingID, "cancelled", renter))

		_, err = uc.CreateBooking(ctx, slotReq(resourceID, 0, time.Hour), uuid.New())
		require.NoError(t, err)
	})

	t.Run("validation errors", func(t *testing.T) {
		f := newFixture()
		resourceID := f.seedResource(t, uuid.New())
		uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())

		testCases := []struct {
			name   string
			mutate func(*commands.CreateBookingRequest)
			errIs  error
		}{
			{name: "end before start", mutate: func(r *commands.CreateBookingRequest) { r.EndTime = r.StartTime.Add(-time.Minute) }, errIs: booking.ErrInvalidInterval},
			{name: "zero length", mutate: func(r *commands.CreateBookingRequest) { r.EndTime = r.StartTime }, errIs: booking.ErrInvalidInterval},
			{name: "blank renter", mutate: func(r *commands.CreateBookingRequest) { r.RenterName = "  " }, errIs: booking.ErrEmptyRenterName},
			{name: "negative price", mutate: func(r *commands.CreateBookingRequest) { r.TotalPriceCents = -1 }, errIs: booking.ErrNegativePrice},
			{name: "unknown resource", mutate: func(r *commands.CreateBookingRequest) { r.ResourceID = uuid.New() }, errIs: resource.ErrResourceNotFound},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req := slotReq(resourceID, 0, time.Hour)
				tc.mutate(&req)
				_, err := uc.CreateBooking(ctx, req, uuid.New())
				assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			})
		}
		assert.Empty(t, f.topics())
	})

	t.Run("unavailable resource rejects bookings", func(t *testing.T) {
		f := newFixture()
		owner := commands.Actor{ID: uuid.New(), Role: user.RoleSpaceOwner}
		resourceID := f.seedResource(t, owner.ID)
		off := false
		require.NoError(t, commands.NewResourceUseCase(f.store, f.clock, discardLogger()).
			UpdateResource(ctx, resourceID, commands.UpdateResourceRequest{IsAvailable: &off}, owner))

		_, err := commands.NewBookingUseCase(f.store, f.clock, discardLogger()).
			CreateBooking(ctx, slotReq(resourceID, 0, time.Hour), uuid.New())
		assert.True(t, errs.Is(err, resource.ErrResourceUnavailable))
	})
}

func TestCreateBooking_ConcurrentOverlapsAdmitExactlyOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	resourceID := f.seedResource(t, uuid.New())
	uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded []uuid.UUID
		conflicts int
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// every slot overlaps [10:00, 11:00)
			offset := time.Duration(i) * time.Minute
			result, err := uc.CreateBooking(ctx, slotReq(resourceID, offset, time.Hour+offset), uuid.New())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded = append(succeeded, result.BookingID)
			case errs.Is(err, errs.ErrBookingConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Len(t, succeeded, 1)
	assert.Equal(t, n-1, conflicts)
}

func TestTransitionBooking(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, commands.BookingCommands, commands.Actor, commands.Actor, uuid.UUID) {
		f := newFixture()
		owner := commands.Actor{ID: uuid.New(), Role: user.RoleSpaceOwner}
		renter := commands.Actor{ID: uuid.New(), Role: user.RoleRenter}
		resourceID := f.seedResource(t, owner.ID)
		uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())
		created, err := uc.CreateBooking(ctx, slotReq(resourceID, 0, time.Hour), renter.ID)
		require.NoError(t, err)
		return f, uc, owner, renter, created.BookingID
	}

	status := func(t *testing.T, f *fixture, id uuid.UUID) string {
		view, err := memstore.NewBookingReadStore(f.store).FindByID(ctx, id)
		require.NoError(t, err)
		return view.Status
	}

	t.Run("owner confirms then completes", func(t *testing.T) {
		f, uc, owner, _, id := setup(t)
		f.clock.Add(time.Minute)

		require.NoError(t, uc.TransitionBooking(ctx, id, "confirmed", owner))
		assert.Equal(t, "confirmed", status(t, f, id))
		require.NoError(t, uc.TransitionBooking(ctx, id, "completed", owner))
		assert.Equal(t, "completed", status(t, f, id))

		assert.Equal(t, []string{
			shared.TopicBookingCreated,
			shared.TopicBookingStatusChanged,
			shared.TopicBookingStatusChanged,
		}, f.topics())
	})

	t.Run("pending cannot skip confirmation", func(t *testing.T) {
		f, uc, owner, _, id := setup(t)
		err := uc.TransitionBooking(ctx, id, "completed", owner)
		assert.True(t, errs.Is(err, booking.ErrInvalidTransition))
		assert.Equal(t, "pending", status(t, f, id))
	})

	t.Run("terminal states reject every transition", func(t *testing.T) {
		for _, terminal := range []string{"cancelled", "completed"} {
			t.Run(terminal, func(t *testing.T) {
				f, uc, owner, _, id := setup(t)
				require.NoError(t, uc.TransitionBooking(ctx, id, "confirmed", owner))
				require.NoError(t, uc.TransitionBooking(ctx, id, terminal, owner))

				for _, target := range []string{"pending", "confirmed", "cancelled", "completed"} {
					err := uc.TransitionBooking(ctx, id, target, owner)
					assert.True(t, errs.Is(err, booking.ErrInvalidTransition), "%s -> %s: %v", terminal, target, err)
				}
				assert.Equal(t, terminal, status(t, f, id))
			})
		}
	})

	t.Run("confirmed cannot go back to pending", func(t *testing.T) {
		_, uc, owner, _, id := setup(t)
		require.NoError(t, uc.TransitionBooking(ctx, id, "confirmed", owner))
		err := uc.TransitionBooking(ctx, id, "pending", owner)
		assert.True(t, errs.Is(err, booking.ErrInvalidTransition))
	})

	t.Run("renter may cancel but not confirm", func(t *testing.T) {
		_, uc, _, renter, id := setup(t)
		err := uc.TransitionBooking(ctx, id, "confirmed", renter)
		assert.True(t, errs.Is(err, booking.ErrNotParticipant))
		require.NoError(t, uc.TransitionBooking(ctx, id, "cancelled", renter))
	})

	t.Run("strangers are rejected and admins are not", func(t *testing.T) {
		_, uc, _, _, id := setup(t)
		stranger := commands.Actor{ID: uuid.New(), Role: user.RoleSpaceOwner}
		err := uc.TransitionBooking(ctx, id, "cancelled", stranger)
		assert.True(t, errs.Is(err, errs.ErrForbidden))

		admin := commands.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		require.NoError(t, uc.TransitionBooking(ctx, id, "confirmed", admin))
	})

	t.Run("unknown status and booking", func(t *testing.T) {
		_, uc, owner, _, id := setup(t)
		err := uc.TransitionBooking(ctx, id, "archived", owner)
		assert.True(t, errs.Is(err, booking.ErrUnknownStatus))

		err = uc.TransitionBooking(ctx, uuid.New(), "confirmed", owner)
		assert.True(t, errs.Is(err, booking.ErrBookingNotFound))
	})
}

// pausingUoW stops the first transaction at LockResource until resume is closed.
type pausingUoW struct {
	shared.UnitOfWork
	reached chan struct{}
	resume  chan struct{}
	once    sync.Once
}

type pausingTx struct {
	shared.Tx
	u *pausingUoW
}

func (u *pausingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, pausingTx{Tx: tx, u: u})
	})
}

func (t pausingTx) LockResource(ctx context.Context, resourceID uuid.UUID) error {
	t.u.once.Do(func() {
		close(t.u.reached)
		<-t.u.resume
	})
	return t.Tx.LockResource(ctx, resourceID)
}

func TestTransitionBooking_ConfirmAfterCancelAndRebookIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := commands.Actor{ID: uuid.New(), Role: user.RoleSpaceOwner}
	renter := commands.Actor{ID: uuid.New(), Role: user.RoleRenter}
	resourceID := f.seedResource(t, owner.ID)
	uc := commands.NewBookingUseCase(f.store, f.clock, discardLogger())

	first, err := uc.CreateBooking(ctx, slotReq(resourceID, 0, time.Hour), renter.ID)
	require.NoError(t, err)

	paused := &pausingUoW{UnitOfWork: f.store, reached: make(chan struct{}), resume: make(chan struct{})}
	confirmed := make(chan error, 1)
	go func() {
		confirmed <- commands.NewBookingUseCase(paused, f.clock, discardLogger()).
			TransitionBooking(ctx, first.BookingID, "confirmed", owner)
	}()
	<-paused.reached

	// the confirm has seen the booking as pending; cancel and rebook the slot meanwhile
	require.NoError(t, uc.TransitionBooking(ctx, first.BookingID, "cancelled", renter))
	second, err := uc.CreateBooking(ctx, slotReq(resourceID, 0, time.Hour), uuid.New())
	require.NoError(t, err)

	close(paused.resume)
	err = <-confirmed
	assert.True(t, errs.Is(err, booking.ErrInvalidTransition), "got %v", err)

	reads := memstore.NewBookingReadStore(f.store)
	view, err := reads.FindByID(ctx, first.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", view.Status)
	view, err = reads.FindByID(ctx, second.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "pending", view.Status)

	slot, err := booking.NewTimeSlot(slotStart, slotStart.Add(time.Hour))
	require.NoError(t, err)
	active, err := reads.FindActiveInWindow(ctx, resourceID, slot)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.BookingID, active[0].ID())
}
