//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase"
	"tablebook/internal/usecase/readmodel"
	"tablebook/tests/common/httptest"
	usecasemock "tablebook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TablesHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockTablesUseCase
	handler  *api.TablesHandler
}

func (s *TablesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockTablesUseCase(s.mockCtrl)
	s.handler = api.NewTablesHandler(s.mockUC)

	s.router.GET("/tables", s.handler.List)
	s.router.POST("/tables", s.handler.Create)
	s.router.GET("/tables/:number", s.handler.GetByNumber)
}

func (s *TablesHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTablesHandlerSuite(t *testing.T) {
	suite.Run(t, new(TablesHandlerTestSuite))
}

func (s *TablesHandlerTestSuite) TestList() {
	s.Run("success: wraps tables in an envelope", func() {
		s.mockUC.EXPECT().List(gomock.Any()).Return([]*readmodel.TableRM{
			{ID: 1, Number: 7, Places: 4, IsVip: false},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables", nil, "")

		var resp resdto.TableList
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Tables, 1)
		s.Equal(7, resp.Tables[0].Number)
	})

	s.Run("success: empty catalog yields an empty list, not null", func() {
		s.mockUC.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"tables": []}`, rec.Body.String())
	})
}

func (s *TablesHandlerTestSuite) TestCreate() {
	body := map[string]any{
		"id":     1,
		"number": 7,
		"places": 4,
		"isVip":  true,
	}

	s.Run("success: returns the catalog id", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), usecase.CreateTableParams{
			ID:     1,
			Number: 7,
			Places: 4,
			IsVip:  true,
		}).Return(1, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tables", body, "")

		var resp resdto.CreateTable
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(1, resp.ID)
	})

	s.Run("error: 409 on duplicate id", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(0, usecase.ErrTableAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tables", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Table already exists")
	})

	s.Run("error: 400 on validation failure", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(0, usecase.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tables", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	// The usecases never return a bare sentinel for these two: validation and
	// timeout failures arrive with the sentinel marked onto a richer error, so
	// status mapping has to see through the mark.
	s.Run("error: 400 when the validation sentinel is marked onto a field error", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(0, errs.Mark(errs.Newf("places: must be a positive number"), usecase.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tables", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "places: must be a positive number")
	})

	s.Run("error: 502 when a store timeout is marked as dependency unavailable", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(0, errs.Mark(errs.Wrap(context.DeadlineExceeded, "failed to create table"), usecase.ErrDependencyUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tables", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Storage temporarily unavailable")
	})
}

func (s *TablesHandlerTestSuite) TestGetByNumber() {
	s.Run("success: returns the table", func() {
		s.mockUC.EXPECT().GetByNumber(gomock.Any(), 7).
			Return(&readmodel.TableRM{ID: 1, Number: 7, Places: 4}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables/7", nil, "")

		var resp readmodel.TableRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(7, resp.Number)
	})

	s.Run("error: 400 on a non-numeric number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables/seven", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "integer")
	})

	s.Run("error: 404 when missing", func() {
		s.mockUC.EXPECT().GetByNumber(gomock.Any(), 9).
			Return(nil, usecase.ErrTableNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Table not found")
	})
}
