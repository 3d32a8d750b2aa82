//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"parkshare/internal/domain/user"
	"parkshare/internal/infra/memstore"
	"parkshare/internal/pkg/clock"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/shared"
	"parkshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type scheduledTask struct {
	delay time.Duration
	run   func(ctx context.Context)
}

// fakeScheduler records tasks instead of starting timers. Tests fire them by key.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks map[string]scheduledTask
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{tasks: make(map[string]scheduledTask)}
}

func (f *fakeScheduler) Schedule(key string, delay time.Duration, task func(ctx context.Context)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[key] = scheduledTask{delay: delay, run: task}
}

func (f *fakeScheduler) get(t *testing.T, key string) scheduledTask {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[key]
	require.True(t, ok, "no task scheduled under %q", key)
	return task
}

func settlementKey(id uuid.UUID) string {
	return "payment-settlement:" + id.String()
}

type fixture struct {
	store *memstore.Store
	clock *clock.MockClock
}

func newFixture() *fixture {
	return &fixture{
		store: memstore.NewStore(discardLogger()),
		clock: clock.NewMockClock(testNow),
	}
}

// seedResource lists a space owned by ownerID and returns its id.
func (f *fixture) seedResource(t *testing.T, ownerID uuid.UUID) uuid.UUID {
	t.Helper()
	uc := commands.NewResourceUseCase(f.store, f.clock, discardLogger())
	res, err := uc.CreateResource(context.Background(),
		builder.NewResourceBuilder().BuildCreateRequest(),
		commands.Actor{ID: ownerID, Role: user.RoleSpaceOwner})
	require.NoError(t, err)
	return res.ResourceID
}

func (f *fixture) topics() []string {
	var out []string
	for _, e := range f.store.OutboxEvents() {
		out = append(out, e.Topic)
	}
	return out
}

var _ shared.TaskScheduler = (*fakeScheduler)(nil)
