package review

import (
	"math"
	"strconv"
)

const NoRatingDisplay = "No rating"

// AggregateRating is the mean of a reviewee's ratings. It keeps the exact sum and
// count so a stored aggregate can be rebuilt without float drift. A zero count is
// the explicit no-rating state, never an average of 0.
type AggregateRating struct {
	count int64
	sum   int64
}

// Aggregate folds the full review set of one reviewee.
func Aggregate(ratings []Rating) AggregateRating {
	var agg AggregateRating
	for _, r := range ratings {
		agg.count++
		agg.sum += int64(r.Value())
	}
	return agg
}

func NoRating() AggregateRating {
	return AggregateRating{}
}

func ReconstructAggregate(count, sum int64) (AggregateRating, error) {
	if count < 0 || sum < count*MinRating || sum > count*MaxRating {
		return AggregateRating{}, ErrInconsistentAggregate
	}
	return AggregateRating{count: count, sum: sum}, nil
}

func (a AggregateRating) HasRating() bool { return a.count > 0 }
func (a AggregateRating) Count() int64    { return a.count }
func (a AggregateRating) Sum() int64      { return a.sum }

func (a AggregateRating) Average() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	return float64(a.sum) / float64(a.count), true
}

// Rounded is the average at display precision (one decimal place).
func (a AggregateRating) Rounded() (float64, bool) {
	avg, ok := a.Average()
	if !ok {
		return 0, false
	}
	return math.Round(avg*10) / 10, true
}

func (a AggregateRating) Display() string {
	rounded, ok := a.Rounded()
	if !ok {
		return NoRatingDisplay
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
