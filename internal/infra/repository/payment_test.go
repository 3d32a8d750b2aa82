//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkshare/internal/domain/payment"
	"parkshare/internal/infra"
	"parkshare/internal/infra/repository"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/errs"
	"parkshare/internal/pkg/pgconv"
	"parkshare/tests/common/builder"
	repositorymock "parkshare/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentRepository_SaveCompletion(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rowsAffected  int64
		queryErr      error
		expectedSaved bool
		expectedError error
	}{
		{
			name:          "success: pending row completed",
			rowsAffected:  1,
			expectedSaved: true,
		},
		{
			name:          "success: row already settled elsewhere",
			rowsAffected:  0,
			expectedSaved: false,
		},
		{
			name:          "error: database error occurs",
			queryErr:      errors.New("database connection error"),
			expectedError: errs.ErrStorage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, err := builder.NewPaymentBuilder().BuildDomain()
			require.NoError(t, err)
			completedAt := p.CreatedAt().Add(5 * time.Second)
			require.NoError(t, p.Complete(completedAt))

			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			repo := repository.NewPaymentRepository(mockQueries, &mockDBTX{}, discardLogger())

			mockQueries.EXPECT().CompletePayment(ctx, gomock.Any(), sqlc.CompletePaymentParams{
				ID:          p.ID(),
				CompletedAt: pgconv.TimeToPgtype(completedAt),
			}).Return(tc.rowsAffected, tc.queryErr)

			saved, err := repo.SaveCompletion(ctx, p)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSaved, saved)
		})
	}
}

func TestPaymentRepository_SaveCompletion_RequiresCompletedPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, err := builder.NewPaymentBuilder().BuildDomain()
	require.NoError(t, err)

	repo := repository.NewPaymentRepository(repositorymock.NewMockPaymentWriteQueries(ctrl), &mockDBTX{}, discardLogger())

	saved, err := repo.SaveCompletion(context.Background(), p)

	assert.False(t, saved)
	assert.ErrorIs(t, err, errs.ErrStorage)
}

func TestPaymentRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	p, err := builder.NewPaymentBuilder().BuildDomain()
	require.NoError(t, err)

	row := sqlc.Payments{
		ID:          p.ID(),
		BookingID:   p.BookingID(),
		RenterID:    p.RenterID(),
		PayeeID:     p.PayeeID(),
		AmountCents: p.AmountCents(),
		Status:      "pending",
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
	}

	t.Run("success: payment decoded from row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockQueries.EXPECT().GetPaymentByIDForUpdate(ctx, gomock.Any(), p.ID()).Return(row, nil)
		repo := repository.NewPaymentRepository(mockQueries, &mockDBTX{}, discardLogger())

		got, err := repo.FindByID(ctx, p.ID())

		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, got.Status())
		assert.Nil(t, got.CompletedAt())
		assert.Equal(t, p.AmountCents(), got.AmountCents())
	})

	t.Run("error: completed row without completion time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bad := row
		bad.Status = "completed"
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockQueries.EXPECT().GetPaymentByIDForUpdate(ctx, gomock.Any(), p.ID()).Return(bad, nil)
		repo := repository.NewPaymentRepository(mockQueries, &mockDBTX{}, discardLogger())

		_, err := repo.FindByID(ctx, p.ID())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockQueries.EXPECT().GetPaymentByIDForUpdate(ctx, gomock.Any(), p.ID()).Return(sqlc.Payments{}, pgx.ErrNoRows)
		repo := repository.NewPaymentRepository(mockQueries, &mockDBTX{}, discardLogger())

		_, err := repo.FindByID(ctx, p.ID())

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
