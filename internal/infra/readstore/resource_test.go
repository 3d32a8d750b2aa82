//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkshare/internal/infra"
	"parkshare/internal/infra/readstore"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/errs"
	"parkshare/internal/pkg/pgconv"
	"parkshare/internal/usecase/queries"
	readstoremock "parkshare/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func resourceRow(id uuid.UUID, count, sum pgtype.Int8) sqlc.GetResourceViewByIDRow {
	now := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	return sqlc.GetResourceViewByIDRow{
		ID:                id,
		OwnerID:           uuid.New(),
		Title:             "Covered bay",
		Address:           "1 Main St",
		Latitude:          pgtype.Float8{Float64: 51.5, Valid: true},
		PricePerHourCents: 300,
		PricePerDayCents:  2000,
		IsAvailable:       true,
		CreatedAt:         pgconv.TimeToPgtype(now),
		UpdatedAt:         pgconv.TimeToPgtype(now),
		ReviewCount:       count,
		RatingSum:         sum,
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestResourceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	testCases := []struct {
		name          string
		row           sqlc.GetResourceViewByIDRow
		queryErr      error
		expectedError error
		check         func(t *testing.T, v *queries.ResourceView)
	}{
		{
			name: "success: owner without reviews",
			row:  resourceRow(resourceID, pgtype.Int8{}, pgtype.Int8{}),
			check: func(t *testing.T, v *queries.ResourceView) {
				assert.Nil(t, v.Rating.Average)
				assert.Equal(t, int64(0), v.Rating.Count)
				assert.Equal(t, "No rating", v.Rating.Display)
				require.NotNil(t, v.Latitude)
				assert.InDelta(t, 51.5, *v.Latitude, 1e-9)
				assert.Nil(t, v.Longitude)
			},
		},
		{
			name: "success: owner rating folded in",
			row:  resourceRow(resourceID, pgtype.Int8{Int64: 3, Valid: true}, pgtype.Int8{Int64: 14, Valid: true}),
			check: func(t *testing.T, v *queries.ResourceView) {
				require.NotNil(t, v.Rating.Average)
				assert.InDelta(t, 4.7, *v.Rating.Average, 1e-9)
				assert.Equal(t, int64(3), v.Rating.Count)
			},
		},
		{
			name:          "error: stats out of range",
			row:           resourceRow(resourceID, pgtype.Int8{Int64: 1, Valid: true}, pgtype.Int8{Int64: 9, Valid: true}),
			expectedError: errs.ErrStorage,
		},
		{
			name:          "error: resource not found",
			queryErr:      pgx.ErrNoRows,
			expectedError: errs.ErrNotFound,
		},
		{
			name:          "error: database error",
			queryErr:      errDBConnectionLost,
			expectedError: errs.ErrStorage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
			mockQueries.EXPECT().GetResourceViewByID(ctx, gomock.Any(), resourceID).Return(tc.row, tc.queryErr)
			store := readstore.NewResourceReadStore(mockQueries, &mockDBTX{}, discardLogger())

			v, err := store.FindByID(ctx, resourceID)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, resourceID, v.ID)
			tc.check(t, v)
		})
	}
}

func TestResourceReadStore_Pages(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	lastCreated := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	lastID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
	store := readstore.NewResourceReadStore(mockQueries, &mockDBTX{}, discardLogger())

	first := sqlc.ListResourcesFirstPageRow(resourceRow(uuid.New(), pgtype.Int8{}, pgtype.Int8{}))
	next := sqlc.ListResourcesKeysetRow(resourceRow(uuid.New(), pgtype.Int8{}, pgtype.Int8{}))

	mockQueries.EXPECT().ListResourcesFirstPage(ctx, gomock.Any(), sqlc.ListResourcesFirstPageParams{
		OwnerID:            pgtype.UUID{Bytes: ownerID, Valid: true},
		IncludeUnavailable: true,
		Limit:              21,
	}).Return([]sqlc.ListResourcesFirstPageRow{first}, nil)
	mockQueries.EXPECT().ListResourcesKeyset(ctx, gomock.Any(), sqlc.ListResourcesKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreated),
		ID:        lastID,
		Limit:     21,
	}).Return([]sqlc.ListResourcesKeysetRow{next}, nil)

	views, err := store.FindFirstPage(ctx, queries.ResourceFilter{OwnerID: &ownerID, IncludeUnavailable: true}, 21)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, first.ID, views[0].ID)

	views, err = store.FindKeyset(ctx, queries.ResourceFilter{}, lastCreated, lastID, 21)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, next.ID, views[0].ID)

	mockQueries.EXPECT().ListResourcesFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
	_, err = store.FindFirstPage(ctx, queries.ResourceFilter{}, 21)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
