package repository

import (
	"context"
	"log/slog"
	"time"

	"parkshare/internal/infra"
	"parkshare/internal/infra/repository/converter"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
	"parkshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxQueries interface {
	EnqueueOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueOutboxEventParams) error
	ClaimDueOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxSentParams) error
	MarkOutboxRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxRetryParams) error
	MarkOutboxFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxFailedParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewOutboxRepository(queries OutboxQueries, db sqlc.DBTX, logger *slog.Logger) *OutboxRepository {
	return &OutboxRepository{queries: queries, db: db, logger: logger}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, event shared.OutboxEvent) error {
	if err := r.queries.EnqueueOutboxEvent(ctx, r.db, converter.OutboxEventToParams(event)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to enqueue outbox event", err)
	}
	return nil
}

// ClaimDue skips rows another relay already holds.
func (r *OutboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimDueOutboxEvents(ctx, r.db, sqlc.ClaimDueOutboxEventsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to claim outbox events", err)
	}
	events := make([]shared.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, converter.OutboxEventFromRow(row))
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkOutboxSent(ctx, r.db, sqlc.MarkOutboxSentParams{
		ID:     id,
		SentAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, id uuid.UUID, attempts int32, runAt time.Time, lastError string) error {
	err := r.queries.MarkOutboxRetry(ctx, r.db, sqlc.MarkOutboxRetryParams{
		ID:        id,
		Attempts:  attempts,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.StringToPgtype(lastError),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to reschedule outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int32, lastError string, _ time.Time) error {
	err := r.queries.MarkOutboxFailed(ctx, r.db, sqlc.MarkOutboxFailedParams{
		ID:        id,
		Attempts:  attempts,
		LastError: pgconv.StringToPgtype(lastError),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to mark outbox event failed", err)
	}
	return nil
}
