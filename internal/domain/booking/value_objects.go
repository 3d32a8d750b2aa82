package booking

import (
	"strings"
	"time"
	"unicode/utf8"
)

const MaxRenterNameLength = 100

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidInterval
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps treats touching endpoints as free: [09:00,10:00) and [10:00,11:00) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return other.start.Before(ts.end) && other.end.After(ts.start)
}

// Money is an amount in minor units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

type RenterName struct {
	value string
}

func NewRenterName(s string) (RenterName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return RenterName{}, ErrEmptyRenterName
	}
	if utf8.RuneCountInString(t) > MaxRenterNameLength {
		return RenterName{}, ErrRenterNameTooLong
	}
	return RenterName{value: t}, nil
}

// ReconstructRenterName restores a name already accepted by NewRenterName.
func ReconstructRenterName(s string) RenterName {
	return RenterName{value: s}
}

func (n RenterName) String() string { return n.value }
