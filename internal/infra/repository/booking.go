package repository

import (
	"context"
	"log/slog"

	"parkshare/internal/domain/booking"
	"parkshare/internal/infra"
	"parkshare/internal/infra/repository/converter"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	FindActiveBookingsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveBookingsInWindowParams) ([]sqlc.Bookings, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to get booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindActiveInWindow(ctx context.Context, resourceID uuid.UUID, slot booking.TimeSlot) ([]*booking.Booking, error) {
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

// Create inserts under a savepoint so that an exclusion violation leaves the
// transaction usable for looking up the booking that won the slot.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.db.Exec(ctx, "SAVEPOINT booking_insert"); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to create savepoint", err)
	}

	err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b))
	if err == nil {
		if _, err := r.db.Exec(ctx, "RELEASE SAVEPOINT booking_insert"); err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to release savepoint", err)
		}
		return nil
	}
	if pgconv.PgErrorCode(err) != pgconv.CodeExclusionViolation {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to create booking", err)
	}

	if _, rbErr := r.db.Exec(ctx, "ROLLBACK TO SAVEPOINT booking_insert"); rbErr != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(rbErr), "failed to roll back savepoint", rbErr)
	}
	existing, findErr := r.FindActiveInWindow(ctx, b.ResourceID(), b.TimeSlot())
	if findErr != nil {
		return findErr
	}
	if winner := booking.FindConflict(b.TimeSlot(), existing); winner != nil {
		return booking.NewConflictError(winner.ID())
	}
	// The conflicting row was gone by the time we looked.
	return booking.NewConflictError(uuid.Nil)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to update booking status", err)
	}
	return nil
}
