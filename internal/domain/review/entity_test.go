//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"parkshare/internal/domain/review"
	"parkshare/internal/pkg/errs"
	"parkshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, b.ReviewerID, actual.ReviewerID())
		assert.Equal(t, b.RevieweeID, actual.RevieweeID())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Easy to find, well lit.", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty comment is allowed",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
			},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("party validation", func(t *testing.T) {
		same := uuid.New()
		runCases(t, []testCase{
			{
				name:   "missing reviewer",
				mutate: func(b *builder.ReviewBuilder) { b.WithReviewerID(uuid.Nil) },
				errIs:  review.ErrMissingReviewer,
			},
			{
				name:   "missing reviewee",
				mutate: func(b *builder.ReviewBuilder) { b.WithRevieweeID(uuid.Nil) },
				errIs:  review.ErrMissingReviewee,
			},
			{
				name: "self review",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithReviewerID(same).WithRevieweeID(same)
				},
				errIs: review.ErrSelfReview,
			},
			{
				name:   "booking reference is optional",
				mutate: func(b *builder.ReviewBuilder) { b.BookingID = nil },
			},
		})
	})

	t.Run("validation errors carry the validation category", func(t *testing.T) {
		_, err := builder.NewReviewBuilder().WithRating(9).BuildDomain()
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("comment trimming", func(t *testing.T) {
		rv, err := review.NewReview(uuid.New(), uuid.New(), nil, 4, "  Trimmed comment  ", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", rv.Comment().String())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
