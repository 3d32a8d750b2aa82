//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"parkshare/internal/infra/repository"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
	"parkshare/internal/usecase/shared"
	repositorymock "parkshare/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("claimed rows carry their retry state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		repo := repository.NewOutboxRepository(mockQueries, &mockDBTX{}, discardLogger())

		mockQueries.EXPECT().ClaimDueOutboxEvents(ctx, gomock.Any(), sqlc.ClaimDueOutboxEventsParams{
			Now:   pgconv.TimeToPgtype(now),
			Limit: 10,
		}).Return([]sqlc.OutboxEvents{{
			ID:        id,
			Topic:     "bookings",
			Key:       "k",
			Payload:   []byte(`{}`),
			Status:    shared.OutboxStatusQueued,
			Attempts:  2,
			LastError: pgtype.Text{String: "broker down", Valid: true},
			RunAt:     pgconv.TimeToPgtype(now),
			CreatedAt: pgconv.TimeToPgtype(now.Add(-time.Minute)),
		}}, nil)

		events, err := repo.ClaimDue(ctx, now, 10)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, int32(2), events[0].Attempts)
		require.NotNil(t, events[0].LastError)
		assert.Equal(t, "broker down", *events[0].LastError)
	})

	t.Run("retry stores the next run time and error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		repo := repository.NewOutboxRepository(mockQueries, &mockDBTX{}, discardLogger())

		mockQueries.EXPECT().MarkOutboxRetry(ctx, gomock.Any(), sqlc.MarkOutboxRetryParams{
			ID:        id,
			Attempts:  3,
			RunAt:     pgconv.TimeToPgtype(now.Add(4 * time.Second)),
			LastError: pgtype.Text{String: "timeout", Valid: true},
		}).Return(nil)

		require.NoError(t, repo.MarkRetry(ctx, id, 3, now.Add(4*time.Second), "timeout"))
	})

	t.Run("enqueue and settle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		repo := repository.NewOutboxRepository(mockQueries, &mockDBTX{}, discardLogger())

		event, err := shared.NewOutboxEvent("bookings", "k", map[string]string{"a": "b"}, now)
		require.NoError(t, err)

		gomock.InOrder(
			mockQueries.EXPECT().EnqueueOutboxEvent(ctx, gomock.Any(), gomock.Any()).Return(nil),
			mockQueries.EXPECT().MarkOutboxSent(ctx, gomock.Any(), sqlc.MarkOutboxSentParams{ID: event.ID, SentAt: pgconv.TimeToPgtype(now)}).Return(nil),
			mockQueries.EXPECT().MarkOutboxFailed(ctx, gomock.Any(), gomock.Any()).Return(nil),
		)

		require.NoError(t, repo.Enqueue(ctx, event))
		require.NoError(t, repo.MarkSent(ctx, event.ID, now))
		require.NoError(t, repo.MarkFailed(ctx, event.ID, 8, "gave up", now))
	})
}
