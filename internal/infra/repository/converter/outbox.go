package converter

import (
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
	"parkshare/internal/usecase/shared"
)

func OutboxEventToParams(e shared.OutboxEvent) sqlc.EnqueueOutboxEventParams {
	return sqlc.EnqueueOutboxEventParams{
		ID:        e.ID,
		Topic:     e.Topic,
		Key:       e.Key,
		Payload:   e.Payload,
		Status:    e.Status,
		Attempts:  e.Attempts,
		RunAt:     pgconv.TimeToPgtype(e.RunAt),
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt),
	}
}

func OutboxEventFromRow(row sqlc.OutboxEvents) shared.OutboxEvent {
	return shared.OutboxEvent{
		ID:        row.ID,
		Topic:     row.Topic,
		Key:       row.Key,
		Payload:   row.Payload,
		Status:    row.Status,
		Attempts:  row.Attempts,
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
