package readstore

import (
	"context"
	"log/slog"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/infra"
	"parkshare/internal/infra/repository/converter"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.Bookings, error)
	FindActiveBookingsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveBookingsInWindowParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to get booking view by id", err)
	}
	return bookingView(row), nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, filter queries.BookingFilter, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, sqlc.ListBookingsFirstPageParams{
		ResourceID: pgconv.UUIDPtrToPgtype(filter.ResourceID),
		RenterID:   pgconv.UUIDPtrToPgtype(filter.RenterID),
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to list bookings first page", err)
	}
	return bookingViews(rows), nil
}

func (r *BookingReadStore) FindKeyset(ctx context.Context, filter queries.BookingFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		ResourceID: pgconv.UUIDPtrToPgtype(filter.ResourceID),
		RenterID:   pgconv.UUIDPtrToPgtype(filter.RenterID),
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to list bookings keyset", err)
	}
	return bookingViews(rows), nil
}

func (r *BookingReadStore) FindActiveInWindow(ctx context.Context, resourceID uuid.UUID, slot booking.TimeSlot) ([]*booking.Booking, error) {
	rows, err := r.queries.FindActiveBookingsInWindow(ctx, r.db, sqlc.FindActiveBookingsInWindowParams{
		ResourceID:  resourceID,
		WindowStart: pgconv.TimeToPgtype(slot.Start()),
		WindowEnd:   pgconv.TimeToPgtype(slot.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to find bookings in window", err)
	}
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func bookingViews(rows []sqlc.Bookings) []*queries.BookingView {
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = bookingView(row)
	}
	return views
}

func bookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		ResourceID:      row.ResourceID,
		RenterID:        row.RenterID,
		RenterName:      row.RenterName,
		StartTime:       pgconv.TimeFromPgtype(row.StartTime),
		EndTime:         pgconv.TimeFromPgtype(row.EndTime),
		Status:          row.Status,
		TotalPriceCents: row.TotalPriceCents,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
