package request

type CreateReservation struct {
	TableNumber   int    `json:"tableNumber"`
	ClientName    string `json:"clientName"`
	PhoneNumber   string `json:"phoneNumber"`
	Date          string `json:"date"`
	SlotTimeStart string `json:"slotTimeStart"`
	SlotTimeEnd   string `json:"slotTimeEnd"`
}
