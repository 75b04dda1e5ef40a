package readmodel

// ReservationRM mirrors the wire shape of a stored reservation.
type ReservationRM struct {
	ID            string `json:"id"`
	TableNumber   int    `json:"tableNumber"`
	ClientName    string `json:"clientName"`
	PhoneNumber   string `json:"phoneNumber"`
	Date          string `json:"date"`
	SlotTimeStart string `json:"slotTimeStart"`
	SlotTimeEnd   string `json:"slotTimeEnd"`
}
