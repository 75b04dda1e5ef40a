package api

import (
	"net/http"

	"tablebook/internal/handler/httperr"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondError maps the usecase error taxonomy to REST status codes in one
// place so every handler reports failures identically. Sentinels arrive
// marked onto richer errors, so matching goes through errs.Is rather than
// the stdlib errors.Is.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	case errs.Is(err, usecase.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized")
	case errs.Is(err, usecase.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password")
	case errs.Is(err, usecase.ErrTableNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Table not found")
	case errs.Is(err, usecase.ErrTableAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Table already exists")
	case errs.Is(err, usecase.ErrReservationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested time slot overlaps an existing reservation")
	case errs.Is(err, usecase.ErrUserAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "User already exists")
	case errs.Is(err, usecase.ErrDependencyUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Storage temporarily unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return false
	}
	return true
}
