package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeSlot = errors.New("start time must be before end time")

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Hours() float64 {
	return ts.Duration().Hours()
}

// Overlaps reports whether two slots collide under the closed-interval
// policy used for room conflicts: touching endpoints count as a conflict.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return !ts.start.After(other.end) && !ts.end.Before(other.start)
}

// Within reports whether the slot falls entirely inside [from, to].
func (ts TimeSlot) Within(from, to time.Time) bool {
	return !ts.start.Before(from) && !ts.end.After(to)
}

// Summary renders the slot the way course schedule summaries display it,
// using the stored timestamps as-is (no timezone conversion).
func (ts TimeSlot) Summary() string {
	return fmt.Sprintf("%s (%s - %s)",
		ts.start.Format("2006-01-02"),
		ts.start.Format("15:04"),
		ts.end.Format("15:04"),
	)
}

type Notes struct {
	value string
}

func NewNotes(value string) Notes {
	return Notes{value: value}
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}
