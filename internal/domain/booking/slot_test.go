//go:build unit

package booking_test

import (
	"testing"

	"tablebook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		errIs error
	}{
		{name: "valid slot", start: "14:00", end: "15:00"},
		{name: "one-minute slot", start: "14:00", end: "14:01"},
		{name: "start equals end", start: "14:00", end: "14:00", errIs: booking.ErrInvalidTimeSlot},
		{name: "start after end", start: "15:00", end: "14:00", errIs: booking.ErrInvalidTimeSlot},
		{name: "malformed start", start: "14h00", end: "15:00", errIs: booking.ErrInvalidTime},
		{name: "malformed end", start: "14:00", end: "25:00", errIs: booking.ErrInvalidTime},
		{name: "empty start", start: "", end: "15:00", errIs: booking.ErrInvalidTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := booking.NewTimeSlot(tc.start, tc.end)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, slot.Start())
			assert.Equal(t, tc.end, slot.End())
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	mustSlot := func(start, end string) booking.TimeSlot {
		slot, err := booking.NewTimeSlot(start, end)
		require.NoError(t, err)
		return slot
	}

	cases := []struct {
		name     string
		a        booking.TimeSlot
		b        booking.TimeSlot
		overlaps bool
	}{
		{name: "disjoint before", a: mustSlot("10:00", "11:00"), b: mustSlot("12:00", "13:00"), overlaps: false},
		{name: "back-to-back does not overlap", a: mustSlot("14:00", "15:00"), b: mustSlot("15:00", "16:00"), overlaps: false},
		{name: "partial overlap", a: mustSlot("14:00", "15:00"), b: mustSlot("14:30", "15:30"), overlaps: true},
		{name: "contained interval", a: mustSlot("14:00", "16:00"), b: mustSlot("14:30", "15:00"), overlaps: true},
		{name: "identical interval", a: mustSlot("14:00", "15:00"), b: mustSlot("14:00", "15:00"), overlaps: true},
		{name: "one-minute overlap at end", a: mustSlot("14:00", "15:01"), b: mustSlot("15:00", "16:00"), overlaps: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			// the predicate is symmetric
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestNewDate(t *testing.T) {
	_, err := booking.NewDate("2024-06-01")
	require.NoError(t, err)

	for _, bad := range []string{"", "01-06-2024", "2024/06/01", "2024-13-01", "tomorrow"} {
		_, err := booking.NewDate(bad)
		assert.ErrorIs(t, err, booking.ErrInvalidDate, bad)
	}
}
