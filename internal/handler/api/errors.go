package api

import (
	"errors"
	"net/http"

	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps marked usecase failures onto HTTP statuses. Anything
// unmarked is a server fault and must not leak internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrInvalidInterval),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrUnavailable),
		errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
