package response

import "tablebook/internal/usecase/readmodel"

type CreateReservation struct {
	ReservationID string `json:"reservationId"`
}

type ReservationList struct {
	Reservations []readmodel.ReservationRM `json:"reservations"`
}
