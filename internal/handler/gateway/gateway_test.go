//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"tablebook/internal/handler/gateway"
	"tablebook/internal/pkg/jwt"
	"tablebook/internal/usecase"
	"tablebook/internal/usecase/readmodel"
	usecasemock "tablebook/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GatewayTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockAuth         *usecasemock.MockAuthUseCase
	mockTables       *usecasemock.MockTablesUseCase
	mockReservations *usecasemock.MockReservationsUseCase
	mockVerifier     *usecasemock.MockTokenVerifier
	router           *gateway.Router
}

func (s *GatewayTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.mockTables = usecasemock.NewMockTablesUseCase(s.mockCtrl)
	s.mockReservations = usecasemock.NewMockReservationsUseCase(s.mockCtrl)
	s.mockVerifier = usecasemock.NewMockTokenVerifier(s.mockCtrl)

	s.router = gateway.NewRouter(gateway.NewAuthGate(s.mockVerifier))
	gateway.NewHandlers(s.mockAuth, s.mockTables, s.mockReservations).Routes(s.router)
}

func (s *GatewayTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) expectValidToken() {
	s.mockVerifier.EXPECT().Verify("good-token").
		Return(&jwt.Claims{UserID: uuid.New(), Email: "ada@example.com"}, nil).Times(1)
}

func authedRequest(method, path, body string) *gateway.Request {
	return &gateway.Request{
		Method:  method,
		Path:    path,
		Headers: map[string]string{"authorization": "Bearer good-token"},
		Body:    body,
	}
}

func decodeBody(t *testing.T, resp gateway.Response, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(resp.Body), target))
}

func (s *GatewayTestSuite) TestEnvelopeShape() {
	s.Run("success is a 200 envelope with a serialized body", func() {
		s.expectValidToken()
		s.mockTables.EXPECT().List(gomock.Any()).
			Return([]*readmodel.TableRM{{ID: 1, Number: 7, Places: 4}}, nil).Times(1)

		resp := s.router.Dispatch(context.Background(), authedRequest(http.MethodGet, "/tables", ""))
		s.Equal(http.StatusOK, resp.StatusCode)
		s.JSONEq(`{"tables":[{"id":1,"number":7,"places":4,"isVip":false}]}`, resp.Body)
	})

	s.Run("every failure is a 400 envelope with a message body", func() {
		s.expectValidToken()
		s.mockTables.EXPECT().GetByNumber(gomock.Any(), 9).
			Return(nil, usecase.ErrTableNotFound).Times(1)

		resp := s.router.Dispatch(context.Background(), authedRequest(http.MethodGet, "/tables/9", ""))
		s.Equal(http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		decodeBody(s.T(), resp, &body)
		s.Equal("table not found", body["message"])
	})

	s.Run("unknown routes reject with 400", func() {
		resp := s.router.Dispatch(context.Background(), &gateway.Request{Method: http.MethodGet, Path: "/nope"})
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func (s *GatewayTestSuite) TestAuthGate() {
	s.Run("missing token short-circuits before the handler", func() {
		resp := s.router.Dispatch(context.Background(), &gateway.Request{Method: http.MethodGet, Path: "/tables"})
		s.Equal(http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		decodeBody(s.T(), resp, &body)
		s.Equal("access token required", body["message"])
	})

	s.Run("invalid token short-circuits before the handler", func() {
		s.mockVerifier.EXPECT().Verify("bad-token").
			Return(nil, jwt.ErrInvalidToken).Times(1)

		req := &gateway.Request{
			Method:  http.MethodGet,
			Path:    "/reservations",
			Headers: map[string]string{"Authorization": "Bearer bad-token"},
		}
		resp := s.router.Dispatch(context.Background(), req)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("sign-in is reachable without a token", func() {
		s.mockAuth.EXPECT().SignIn(gomock.Any(), "ada@example.com", "Correct_Horse1").
			Return("issued-token", nil).Times(1)

		req := &gateway.Request{
			Method: http.MethodPost,
			Path:   "/signin",
			Body:   `{"email":"ada@example.com","password":"Correct_Horse1"}`,
		}
		resp := s.router.Dispatch(context.Background(), req)
		s.Equal(http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(s.T(), resp, &body)
		s.Equal("issued-token", body["idToken"])
	})
}

func (s *GatewayTestSuite) TestPathParams() {
	s.expectValidToken()
	s.mockTables.EXPECT().GetByNumber(gomock.Any(), 12).
		Return(&readmodel.TableRM{ID: 3, Number: 12, Places: 2}, nil).Times(1)

	resp := s.router.Dispatch(context.Background(), authedRequest(http.MethodGet, "/tables/12", ""))
	s.Equal(http.StatusOK, resp.StatusCode)

	var table readmodel.TableRM
	decodeBody(s.T(), resp, &table)
	s.Equal(12, table.Number)
}

func (s *GatewayTestSuite) TestCreateReservation() {
	s.Run("returns the reservation id on success", func() {
		s.expectValidToken()
		id := uuid.New()
		s.mockReservations.EXPECT().Create(gomock.Any(), usecase.CreateReservationParams{
			TableNumber:   3,
			ClientName:    "Grace",
			PhoneNumber:   "+15550100",
			Date:          "2026-09-12",
			SlotTimeStart: "18:00",
			SlotTimeEnd:   "20:00",
		}).Return(id, nil).Times(1)

		body := `{"tableNumber":3,"clientName":"Grace","phoneNumber":"+15550100","date":"2026-09-12","slotTimeStart":"18:00","slotTimeEnd":"20:00"}`
		resp := s.router.Dispatch(context.Background(), authedRequest(http.MethodPost, "/reservations", body))
		s.Equal(http.StatusOK, resp.StatusCode)

		var out map[string]string
		decodeBody(s.T(), resp, &out)
		s.Equal(id.String(), out["reservationId"])
	})

	s.Run("maps an overlap rejection to 400, not 409", func() {
		s.expectValidToken()
		s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, usecase.ErrReservationConflict).Times(1)

		body := `{"tableNumber":3,"clientName":"Grace","phoneNumber":"+15550100","date":"2026-09-12","slotTimeStart":"18:00","slotTimeEnd":"20:00"}`
		resp := s.router.Dispatch(context.Background(), authedRequest(http.MethodPost, "/reservations", body))
		s.Equal(http.StatusBadRequest, resp.StatusCode)

		var out map[string]string
		decodeBody(s.T(), resp, &out)
		s.Equal("overlapping reservation exists", out["message"])
	})

	s.Run("rejects malformed JSON without touching the usecase", func() {
		s.expectValidToken()

		resp := s.router.Dispatch(context.Background(), authedRequest(http.MethodPost, "/reservations", "{"))
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}
