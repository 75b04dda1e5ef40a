package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase"
	"tablebook/internal/usecase/readmodel"
)

// Handlers binds the booking operations to the proxy route table.
type Handlers struct {
	auth         usecase.AuthUseCase
	tables       usecase.TablesUseCase
	reservations usecase.ReservationsUseCase
}

func NewHandlers(
	auth usecase.AuthUseCase,
	tables usecase.TablesUseCase,
	reservations usecase.ReservationsUseCase,
) *Handlers {
	return &Handlers{auth: auth, tables: tables, reservations: reservations}
}

// Routes registers every operation. Sign-up and sign-in are open; the
// catalog and reservation routes sit behind the auth gate.
func (h *Handlers) Routes(router *Router) {
	router.Handle(http.MethodPost, "/signup", false, h.SignUp)
	router.Handle(http.MethodPost, "/signin", false, h.SignIn)
	router.Handle(http.MethodGet, "/tables", true, h.ListTables)
	router.Handle(http.MethodPost, "/tables", true, h.CreateTable)
	router.Handle(http.MethodGet, "/tables/{number}", true, h.GetTable)
	router.Handle(http.MethodPost, "/reservations", true, h.CreateReservation)
	router.Handle(http.MethodGet, "/reservations", true, h.ListReservations)
}

func (h *Handlers) SignUp(ctx context.Context, req *Request) Response {
	var body reqdto.SignUp
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Fail("invalid request body")
	}

	err := h.auth.SignUp(ctx, usecase.SignUpParams{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
	})
	if err != nil {
		return Fail(err.Error())
	}
	return OK(map[string]string{"message": "signed up"})
}

func (h *Handlers) SignIn(ctx context.Context, req *Request) Response {
	var body reqdto.SignIn
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Fail("invalid request body")
	}

	token, err := h.auth.SignIn(ctx, body.Email, body.Password)
	if err != nil {
		return Fail(err.Error())
	}
	return OK(resdto.SignIn{IDToken: token})
}

func (h *Handlers) ListTables(ctx context.Context, _ *Request) Response {
	tables, err := h.tables.List(ctx)
	if err != nil {
		return Fail(err.Error())
	}

	out := make([]readmodel.TableRM, 0, len(tables))
	for _, t := range tables {
		out = append(out, *t)
	}
	return OK(resdto.TableList{Tables: out})
}

func (h *Handlers) CreateTable(ctx context.Context, req *Request) Response {
	var body reqdto.CreateTable
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Fail("invalid request body")
	}

	id, err := h.tables.Create(ctx, usecase.CreateTableParams{
		ID:       body.ID,
		Number:   body.Number,
		Places:   body.Places,
		IsVip:    body.IsVip,
		MinOrder: body.MinOrder,
	})
	if err != nil {
		return Fail(err.Error())
	}
	return OK(resdto.CreateTable{ID: id})
}

func (h *Handlers) GetTable(ctx context.Context, req *Request) Response {
	number, err := strconv.Atoi(req.PathParam("number"))
	if err != nil {
		return Fail("table number must be an integer")
	}

	table, err := h.tables.GetByNumber(ctx, number)
	if err != nil {
		return Fail(err.Error())
	}
	return OK(table)
}

func (h *Handlers) CreateReservation(ctx context.Context, req *Request) Response {
	var body reqdto.CreateReservation
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return Fail("invalid request body")
	}

	id, err := h.reservations.Create(ctx, usecase.CreateReservationParams{
		TableNumber:   body.TableNumber,
		ClientName:    body.ClientName,
		PhoneNumber:   body.PhoneNumber,
		Date:          body.Date,
		SlotTimeStart: body.SlotTimeStart,
		SlotTimeEnd:   body.SlotTimeEnd,
	})
	if err != nil {
		return Fail(err.Error())
	}
	return OK(resdto.CreateReservation{ReservationID: id.String()})
}

func (h *Handlers) ListReservations(ctx context.Context, _ *Request) Response {
	reservations, err := h.reservations.List(ctx)
	if err != nil {
		return Fail(err.Error())
	}

	out := make([]readmodel.ReservationRM, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, *r)
	}
	return OK(resdto.ReservationList{Reservations: out})
}
