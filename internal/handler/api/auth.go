package api

import (
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUp
	if !bindJSON(c, &req) {
		return
	}

	params := usecase.SignUpParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	if err := h.authUseCase.SignUp(c.Request.Context(), params); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed up"})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req reqdto.SignIn
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authUseCase.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SignIn{IDToken: token})
}
