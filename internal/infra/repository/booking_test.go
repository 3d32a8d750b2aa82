//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/infra"
	"parkshare/internal/infra/repository"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/errs"
	"parkshare/internal/pkg/pgconv"
	"parkshare/tests/common/builder"
	repositorymock "parkshare/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingRow(b *booking.Booking) sqlc.Bookings {
	return sqlc.Bookings{
		ID:              b.ID(),
		ResourceID:      b.ResourceID(),
		RenterID:        b.RenterID(),
		RenterName:      b.RenterName().String(),
		StartTime:       pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:         pgconv.TimeToPgtype(b.TimeSlot().End()),
		Status:          b.Status().String(),
		TotalPriceCents: b.TotalPrice().Cents(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)

	winner := builder.NewBookingBuilder().
		WithResourceID(resourceID).
		WithSlot(start.Add(-time.Hour), start.Add(time.Hour)).
		WithStatus(booking.StatusConfirmed).
		MustBuildDomain()

	exclusion := &pgconn.PgError{Code: pgconv.CodeExclusionViolation, Message: "conflicting key value violates exclusion constraint"}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries)
		expectedExecs []string
		expectedError error
		expectKind    infra.RepositoryErrorKind
		expectWinner  uuid.UUID
	}{
		{
			name: "success: booking inserted and savepoint released",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedExecs: []string{"SAVEPOINT booking_insert", "RELEASE SAVEPOINT booking_insert"},
		},
		{
			name: "error: overlap reports the booking holding the slot",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(exclusion)
				mock.EXPECT().FindActiveBookingsInWindow(ctx, gomock.Any(), gomock.Any()).
					Return([]sqlc.Bookings{bookingRow(winner)}, nil)
			},
			expectedExecs: []string{"SAVEPOINT booking_insert", "ROLLBACK TO SAVEPOINT booking_insert"},
			expectedError: errs.ErrBookingConflict,
			expectWinner:  winner.ID(),
		},
		{
			name: "error: overlap whose holder vanished still conflicts",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(exclusion)
				mock.EXPECT().FindActiveBookingsInWindow(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedExecs: []string{"SAVEPOINT booking_insert", "ROLLBACK TO SAVEPOINT booking_insert"},
			expectedError: errs.ErrBookingConflict,
			expectWinner:  uuid.Nil,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedExecs: []string{"SAVEPOINT booking_insert"},
			expectedError: errs.ErrStorage,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB, discardLogger())

			tc.setupMock(mockQueries)

			candidate := builder.NewBookingBuilder().
				WithResourceID(resourceID).
				WithSlot(start, start.Add(2*time.Hour)).
				MustBuildDomain()

			actualError := repo.Create(ctx, candidate)

			assert.Equal(t, tc.expectedExecs, mockDB.execs)
			if tc.expectedError == nil {
				assert.NoError(t, actualError)
				return
			}
			require.Error(t, actualError)
			assert.ErrorIs(t, actualError, tc.expectedError)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			}
			if errors.Is(tc.expectedError, errs.ErrBookingConflict) {
				id, ok := booking.ConflictingBookingID(actualError)
				require.True(t, ok)
				assert.Equal(t, tc.expectWinner, id)
			}
		})
	}
}

func TestBookingRepository_Create_SavepointFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{execErr: map[string]error{"SAVEPOINT booking_insert": errors.New("connection reset")}}
	repo := repository.NewBookingRepository(mockQueries, mockDB, discardLogger())

	err := repo.Create(ctx, builder.NewBookingBuilder().MustBuildDomain())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorage)
}

// =============================================================================
// Find Booking Tests
// =============================================================================

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).MustBuildDomain()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries)
		expectedError error
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking decoded from row",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().GetBookingByIDForUpdate(ctx, gomock.Any(), stored.ID()).Return(bookingRow(stored), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().GetBookingByIDForUpdate(ctx, gomock.Any(), stored.ID()).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectedError: errs.ErrNotFound,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: corrupt status in row",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				row := bookingRow(stored)
				row.Status = "archived"
				mock.EXPECT().GetBookingByIDForUpdate(ctx, gomock.Any(), stored.ID()).Return(row, nil)
			},
			expectedError: errs.ErrStorage,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			repo := repository.NewBookingRepository(mockQueries, &mockDBTX{}, discardLogger())
			tc.setupMock(mockQueries)

			got, err := repo.FindByID(ctx, stored.ID())

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID(), got.ID())
			assert.Equal(t, booking.StatusConfirmed, got.Status())
			assert.True(t, stored.TimeSlot().Start().Equal(got.TimeSlot().Start()))
			assert.Equal(t, stored.RenterName(), got.RenterName())
		})
	}
}

func TestBookingRepository_FindActiveInWindow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := builder.NewBookingBuilder().MustBuildDomain()
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	repo := repository.NewBookingRepository(mockQueries, &mockDBTX{}, discardLogger())

	slot := existing.TimeSlot()
	mockQueries.EXPECT().FindActiveBookingsInWindow(ctx, gomock.Any(), sqlc.FindActiveBookingsInWindowParams{
		ResourceID:  existing.ResourceID(),
		WindowStart: pgconv.TimeToPgtype(slot.Start()),
		WindowEnd:   pgconv.TimeToPgtype(slot.End()),
	}).Return([]sqlc.Bookings{bookingRow(existing)}, nil)

	got, err := repo.FindActiveInWindow(ctx, existing.ResourceID(), slot)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, existing.ID(), got[0].ID())
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := builder.NewBookingBuilder().MustBuildDomain()
	require.NoError(t, b.TransitionTo(booking.StatusConfirmed, b.CreatedAt().Add(time.Minute)))

	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	repo := repository.NewBookingRepository(mockQueries, &mockDBTX{}, discardLogger())

	mockQueries.EXPECT().UpdateBookingStatus(ctx, gomock.Any(), sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    "confirmed",
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}).Return(nil)

	require.NoError(t, repo.UpdateStatus(ctx, b))
}
