//go:build unit

package booking_test

import (
	"testing"

	"tablebook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReservation(t *testing.T, tableNumber int, date, start, end string) *booking.Reservation {
	t.Helper()
	d, err := booking.NewDate(date)
	require.NoError(t, err)
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	r, err := booking.NewReservation(tableNumber, "John Doe", "+10000000000", d, slot)
	require.NoError(t, err)
	return r
}

func TestNewReservation(t *testing.T) {
	date, _ := booking.NewDate("2024-06-01")
	slot, _ := booking.NewTimeSlot("14:00", "15:00")

	t.Run("success", func(t *testing.T) {
		r, err := booking.NewReservation(5, "John Doe", "+10000000000", date, slot)
		require.NoError(t, err)
		assert.NotEmpty(t, r.ID())
		assert.Equal(t, 5, r.TableNumber())
	})

	t.Run("distinct ids per reservation", func(t *testing.T) {
		a, _ := booking.NewReservation(5, "A", "1", date, slot)
		b, _ := booking.NewReservation(5, "B", "2", date, slot)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	cases := []struct {
		name        string
		tableNumber int
		clientName  string
		phoneNumber string
		errIs       error
	}{
		{name: "zero table number", tableNumber: 0, clientName: "A", phoneNumber: "1", errIs: booking.ErrInvalidTableNumber},
		{name: "negative table number", tableNumber: -3, clientName: "A", phoneNumber: "1", errIs: booking.ErrInvalidTableNumber},
		{name: "empty client name", tableNumber: 5, clientName: "", phoneNumber: "1", errIs: booking.ErrEmptyClientName},
		{name: "empty phone number", tableNumber: 5, clientName: "A", phoneNumber: "", errIs: booking.ErrEmptyPhoneNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewReservation(tc.tableNumber, tc.clientName, tc.phoneNumber, date, slot)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestFirstConflict(t *testing.T) {
	existing := []*booking.Reservation{
		mustReservation(t, 5, "2024-06-01", "14:00", "15:00"),
		mustReservation(t, 5, "2024-06-01", "18:00", "20:00"),
	}

	t.Run("back-to-back booking is allowed", func(t *testing.T) {
		candidate := mustReservation(t, 5, "2024-06-01", "15:00", "16:00")
		assert.Nil(t, booking.FirstConflict(candidate, existing))
	})

	t.Run("overlapping slot conflicts", func(t *testing.T) {
		candidate := mustReservation(t, 5, "2024-06-01", "14:30", "15:30")
		conflict := booking.FirstConflict(candidate, existing)
		require.NotNil(t, conflict)
		assert.Equal(t, existing[0].ID(), conflict.ID())
	})

	t.Run("different table is ignored regardless of times", func(t *testing.T) {
		candidate := mustReservation(t, 6, "2024-06-01", "14:00", "15:00")
		assert.Nil(t, booking.FirstConflict(candidate, existing))
	})

	t.Run("different date is ignored regardless of times", func(t *testing.T) {
		candidate := mustReservation(t, 5, "2024-06-02", "14:00", "15:00")
		assert.Nil(t, booking.FirstConflict(candidate, existing))
	})

	t.Run("empty snapshot never conflicts", func(t *testing.T) {
		candidate := mustReservation(t, 5, "2024-06-01", "14:00", "15:00")
		assert.Nil(t, booking.FirstConflict(candidate, nil))
	})

	t.Run("conflict detection is symmetric", func(t *testing.T) {
		a := mustReservation(t, 5, "2024-06-01", "14:00", "15:00")
		b := mustReservation(t, 5, "2024-06-01", "14:59", "16:00")
		assert.Equal(t, a.ConflictsWith(b), b.ConflictsWith(a))
		assert.True(t, a.ConflictsWith(b))
	})
}
