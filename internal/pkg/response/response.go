package response

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gymoffice/internal/pkg/apperr"
)

// ErrorBody is the envelope every failed request produces.
type ErrorBody struct {
	Message         string    `json:"message"`
	DetailedMessage string    `json:"detailedMessage"`
	ErrorTime       time.Time `json:"errorTime"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, statusCode int, message, detail string) {
	c.JSON(statusCode, ErrorBody{
		Message:         message,
		DetailedMessage: detail,
		ErrorTime:       time.Now(),
	})
}

// ValidationError formats a field→tag violation map into the error envelope.
func ValidationError(c *gin.Context, violations map[string]string) {
	parts := make([]string, 0, len(violations))
	for field, tag := range violations {
		parts = append(parts, field+": "+tag)
	}
	sort.Strings(parts)
	Error(c, http.StatusBadRequest, "Bad request", strings.Join(parts, "; "))
}

// ServiceError is the single place service failures become HTTP statuses.
// Unrecognized errors are logged and reported with a generic detail so
// internal diagnostics never reach the client.
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		Error(c, http.StatusNotFound, "Entity not found", err.Error())
	case errors.Is(err, apperr.ErrValidation):
		Error(c, http.StatusBadRequest, "Bad request", err.Error())
	case errors.Is(err, apperr.ErrConflict):
		Error(c, http.StatusConflict, "Conflict", err.Error())
	default:
		log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		Error(c, http.StatusInternalServerError, "Internal server error", "unexpected error")
	}
}
