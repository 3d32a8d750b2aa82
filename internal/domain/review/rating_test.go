//go:build unit

package review_test

import (
	"testing"

	"parkshare/internal/domain/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratings(t *testing.T, values ...int) []review.Rating {
	t.Helper()
	out := make([]review.Rating, 0, len(values))
	for _, v := range values {
		r, err := review.NewRating(v)
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func TestAggregate(t *testing.T) {
	t.Run("mean of five and four", func(t *testing.T) {
		agg := review.Aggregate(ratings(t, 5, 4))

		avg, ok := agg.Average()
		require.True(t, ok)
		assert.InDelta(t, 4.5, avg, 1e-9)
		assert.Equal(t, int64(2), agg.Count())
		assert.Equal(t, "4.5", agg.Display())
	})

	t.Run("zero reviews is no rating, not zero", func(t *testing.T) {
		agg := review.Aggregate(nil)

		assert.False(t, agg.HasRating())
		_, ok := agg.Average()
		assert.False(t, ok)
		_, ok = agg.Rounded()
		assert.False(t, ok)
		assert.Equal(t, review.NoRatingDisplay, agg.Display())
		assert.Equal(t, review.NoRating(), agg)
	})

	t.Run("display rounds to one decimal", func(t *testing.T) {
		tests := []struct {
			values []int
			want   string
		}{
			{values: []int{5}, want: "5.0"},
			{values: []int{4, 4, 5}, want: "4.3"},
			{values: []int{1, 2}, want: "1.5"},
			{values: []int{5, 5, 4}, want: "4.7"},
			{values: []int{3, 3, 3, 4}, want: "3.3"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, review.Aggregate(ratings(t, tt.values...)).Display(), "%v", tt.values)
		}
	})

	t.Run("stored aggregate rebuilds the same value", func(t *testing.T) {
		agg := review.Aggregate(ratings(t, 1, 5, 5))
		rebuilt, err := review.ReconstructAggregate(agg.Count(), agg.Sum())
		require.NoError(t, err)
		assert.Equal(t, agg, rebuilt)

		for _, bad := range [][2]int64{{-1, 0}, {1, 9}, {2, 1}, {0, 3}} {
			_, err = review.ReconstructAggregate(bad[0], bad[1])
			require.ErrorIs(t, err, review.ErrInconsistentAggregate, "count=%d sum=%d", bad[0], bad[1])
		}
	})
}
