package api

import (
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase"
	"tablebook/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type ReservationsHandler struct {
	reservationsUseCase usecase.ReservationsUseCase
}

func NewReservationsHandler(reservationsUseCase usecase.ReservationsUseCase) *ReservationsHandler {
	return &ReservationsHandler{reservationsUseCase: reservationsUseCase}
}

func (h *ReservationsHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservation
	if !bindJSON(c, &req) {
		return
	}

	params := usecase.CreateReservationParams{
		TableNumber:   req.TableNumber,
		ClientName:    req.ClientName,
		PhoneNumber:   req.PhoneNumber,
		Date:          req.Date,
		SlotTimeStart: req.SlotTimeStart,
		SlotTimeEnd:   req.SlotTimeEnd,
	}

	id, err := h.reservationsUseCase.Create(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CreateReservation{ReservationID: id.String()})
}

func (h *ReservationsHandler) List(c *gin.Context) {
	reservations, err := h.reservationsUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]readmodel.ReservationRM, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, *r)
	}
	c.JSON(http.StatusOK, resdto.ReservationList{Reservations: out})
}
