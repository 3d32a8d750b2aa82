//go:build unit

package booking_test

import (
	"testing"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/pkg/errs"
	"parkshare/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func slot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	ts, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return ts
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("start equal to end is rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(at(10, 0), at(10, 0))
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
		assert.True(t, errs.Is(err, errs.ErrInvalidInterval))
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(at(11, 0), at(10, 0))
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("slot is normalized to UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		ts := slot(t, at(10, 0).In(tokyo), at(11, 0).In(tokyo))
		assert.Equal(t, time.UTC, ts.Start().Location())
		assert.Equal(t, time.Hour, ts.Duration())
	})
}

func TestTimeSlot_Overlaps(t *testing.T) {
	candidate := slot(t, at(10, 0), at(11, 0))

	tests := []struct {
		name  string
		other booking.TimeSlot
		want  bool
	}{
		{name: "contained", other: slot(t, at(10, 30), at(10, 45)), want: true},
		{name: "containing", other: slot(t, at(9, 0), at(12, 0)), want: true},
		{name: "identical", other: slot(t, at(10, 0), at(11, 0)), want: true},
		{name: "overlaps start", other: slot(t, at(9, 30), at(10, 1)), want: true},
		{name: "overlaps end", other: slot(t, at(10, 59), at(11, 30)), want: true},
		{name: "touches start", other: slot(t, at(9, 0), at(10, 0)), want: false},
		{name: "touches end", other: slot(t, at(11, 0), at(12, 0)), want: false},
		{name: "disjoint", other: slot(t, at(13, 0), at(14, 0)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidate.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(candidate), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	candidate := slot(t, at(10, 0), at(11, 0))

	t.Run("active booking inside the window conflicts", func(t *testing.T) {
		existing := builder.NewBookingBuilder().WithSlot(at(10, 30), at(10, 45)).MustBuildDomain()

		got := booking.FindConflict(candidate, []*booking.Booking{existing})
		require.NotNil(t, got)
		assert.Equal(t, existing.ID(), got.ID())

		err := booking.CheckConflict(candidate, []*booking.Booking{existing})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrBookingConflict))
		id, ok := booking.ConflictingBookingID(err)
		require.True(t, ok)
		assert.Equal(t, existing.ID(), id)
	})

	t.Run("booking ending at the candidate start does not conflict", func(t *testing.T) {
		existing := builder.NewBookingBuilder().WithSlot(at(9, 0), at(10, 0)).MustBuildDomain()

		assert.Nil(t, booking.FindConflict(candidate, []*booking.Booking{existing}))
		assert.NoError(t, booking.CheckConflict(candidate, []*booking.Booking{existing}))
	})

	t.Run("confirmed booking conflicts", func(t *testing.T) {
		existing := builder.NewBookingBuilder().
			WithSlot(at(10, 15), at(12, 0)).
			WithStatus(booking.StatusConfirmed).
			MustBuildDomain()

		assert.NotNil(t, booking.FindConflict(candidate, []*booking.Booking{existing}))
	})

	t.Run("inactive bookings are ignored even when they overlap", func(t *testing.T) {
		var history []*booking.Booking
		for _, st := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted} {
			for i := 0; i < 50; i++ {
				history = append(history, builder.NewBookingBuilder().
					WithSlot(at(10, 0), at(11, 0)).
					WithStatus(st).
					MustBuildDomain())
			}
		}

		assert.Nil(t, booking.FindConflict(candidate, history))
	})

	t.Run("first active overlap wins", func(t *testing.T) {
		cancelled := builder.NewBookingBuilder().WithSlot(at(10, 0), at(11, 0)).WithStatus(booking.StatusCancelled).MustBuildDomain()
		first := builder.NewBookingBuilder().WithSlot(at(10, 0), at(10, 30)).MustBuildDomain()
		second := builder.NewBookingBuilder().WithSlot(at(10, 30), at(11, 0)).MustBuildDomain()

		got := booking.FindConflict(candidate, []*booking.Booking{cancelled, first, second})
		require.NotNil(t, got)
		assert.Equal(t, first.ID(), got.ID())
	})

	t.Run("empty and nil entries", func(t *testing.T) {
		assert.Nil(t, booking.FindConflict(candidate, nil))
		assert.Nil(t, booking.FindConflict(candidate, []*booking.Booking{nil}))
	})
}
