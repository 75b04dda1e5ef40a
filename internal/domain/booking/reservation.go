package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName  = errors.New("client name is required")
	ErrEmptyPhoneNumber = errors.New("phone number is required")
)

// Reservation holds a table (by number) for a client over a time slot on a
// single day. Reservations are created once and never mutated.
type Reservation struct {
	id          uuid.UUID
	tableNumber int
	clientName  string
	phoneNumber string
	date        Date
	slot        TimeSlot
}

func NewReservation(tableNumber int, clientName, phoneNumber string, date Date, slot TimeSlot) (*Reservation, error) {
	if tableNumber <= 0 {
		return nil, ErrInvalidTableNumber
	}
	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if phoneNumber == "" {
		return nil, ErrEmptyPhoneNumber
	}
	return &Reservation{
		id:          uuid.New(),
		tableNumber: tableNumber,
		clientName:  clientName,
		phoneNumber: phoneNumber,
		date:        date,
		slot:        slot,
	}, nil
}

func ReconstructReservation(id uuid.UUID, tableNumber int, clientName, phoneNumber string, date Date, slot TimeSlot) *Reservation {
	return &Reservation{
		id:          id,
		tableNumber: tableNumber,
		clientName:  clientName,
		phoneNumber: phoneNumber,
		date:        date,
		slot:        slot,
	}
}

func (r *Reservation) ID() uuid.UUID       { return r.id }
func (r *Reservation) TableNumber() int    { return r.tableNumber }
func (r *Reservation) ClientName() string  { return r.clientName }
func (r *Reservation) PhoneNumber() string { return r.phoneNumber }
func (r *Reservation) Date() Date          { return r.date }
func (r *Reservation) Slot() TimeSlot      { return r.slot }

// ConflictsWith reports whether two reservations compete for the same table
// on the same day with overlapping slots.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.tableNumber != other.tableNumber || !r.date.Equal(other.date) {
		return false
	}
	return r.slot.Overlaps(other.slot)
}

// FirstConflict scans existing reservations and returns the first entry the
// candidate conflicts with, or nil. The scan assumes no ordering and skips
// entries for a different table or date, so callers may pass a wider
// snapshot than the exact (table, date) partition.
func FirstConflict(candidate *Reservation, existing []*Reservation) *Reservation {
	for _, other := range existing {
		if candidate.ConflictsWith(other) {
			return other
		}
	}
	return nil
}
