package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nlefevre/gocommerce/internal/application"
	"github.com/nlefevre/gocommerce/internal/domain/repository"
	"github.com/nlefevre/gocommerce/pkg/response"
)

// serviceError maps application errors onto the REST taxonomy:
// validation 422, unresolved identifier 404, bad credentials 401,
// anything else a generic 500.
func serviceError(c *gin.Context, err error, notFoundMsg string) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", verr.Fields)
	case errors.Is(err, repository.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, notFoundMsg, nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

// pathID parses a numeric path parameter; a non-numeric id cannot resolve
// to a row, so it reads as not found.
func pathID(c *gin.Context, name, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusNotFound, notFoundMsg, nil)
		return 0, false
	}
	return id, true
}
