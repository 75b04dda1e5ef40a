package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Date is a calendar day with no timezone attached; reservations are
// compared on the literal day, never on instants.
type Date struct {
	value string
}

func NewDate(value string) (Date, error) {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: value}, nil
}

func (d Date) String() string {
	return d.value
}

func (d Date) Equal(other Date) bool {
	return d.value == other.value
}

// TimeSlot is a half-open interval [start, end) within a single day, held
// as minutes from midnight.
type TimeSlot struct {
	start int
	end   int
}

func NewTimeSlot(start, end string) (TimeSlot, error) {
	s, err := parseMinutes(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := parseMinutes(end)
	if err != nil {
		return TimeSlot{}, err
	}
	if s >= e {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: s, end: e}, nil
}

func parseMinutes(value string) (int, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps reports whether two half-open intervals intersect. Intervals
// that merely touch at a boundary do not overlap, so back-to-back
// bookings are allowed.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start < other.end && other.start < ts.end
}

// NewTimeSlotFromMinutes rebuilds a slot from stored minute offsets.
func NewTimeSlotFromMinutes(start, end int) (TimeSlot, error) {
	if start < 0 || end > 24*60 {
		return TimeSlot{}, ErrInvalidTime
	}
	if start >= end {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() string {
	return formatMinutes(ts.start)
}

func (ts TimeSlot) End() string {
	return formatMinutes(ts.end)
}

func (ts TimeSlot) StartMinutes() int {
	return ts.start
}

func (ts TimeSlot) EndMinutes() int {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return time.Duration(ts.end-ts.start) * time.Minute
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.Start(), ts.End())
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
