//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase"
	"tablebook/tests/common/httptest"
	usecasemock "tablebook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUC)

	s.router.POST("/signup", s.handler.SignUp)
	s.router.POST("/signin", s.handler.SignIn)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestSignUp() {
	body := map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "Correct_Horse1",
	}

	s.Run("success: returns 200 OK", func() {
		s.mockUC.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/signup", body, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on validation failure", func() {
		s.mockUC.EXPECT().SignUp(gomock.Any(), gomock.Any()).
			Return(usecase.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/signup", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockUC.EXPECT().SignUp(gomock.Any(), gomock.Any()).
			Return(usecase.ErrUserAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/signup", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "User already exists")
	})
}

func (s *AuthHandlerTestSuite) TestSignIn() {
	body := map[string]any{
		"email":    "ada@example.com",
		"password": "Correct_Horse1",
	}

	s.Run("success: returns the issued token", func() {
		s.mockUC.EXPECT().SignIn(gomock.Any(), "ada@example.com", "Correct_Horse1").
			Return("issued-token", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/signin", body, "")

		var resp resdto.SignIn
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("issued-token", resp.IDToken)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockUC.EXPECT().SignIn(gomock.Any(), "ada@example.com", "Correct_Horse1").
			Return("", usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/signin", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 502 when the store is unreachable", func() {
		s.mockUC.EXPECT().SignIn(gomock.Any(), "ada@example.com", "Correct_Horse1").
			Return("", usecase.ErrDependencyUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/signin", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "")
	})
}
