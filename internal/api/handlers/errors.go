package handlers

import (
	"net/http"
	"strconv"

	apperrors "students-api/internal/errors"
	"students-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError writes the JSON error body with the status matching err:
// 400 for invalid input and constraint violations, 404 for missing rows, 500 otherwise.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsBadRequest(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	default:
		logger.WithContext(c).WithError(err).Error("Unhandled error")
	}

	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// intParam parses a path parameter as an integer
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return v, true
}
