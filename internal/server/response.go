package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movefunnel/internal/funnel"
	"movefunnel/internal/services/session"
)

// Error codes returned in the "error.code" field.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeNotFound         = "NOT_FOUND"
	CodeUnknownAction    = "UNKNOWN_ACTION"
	CodeServerError      = "SERVER_ERROR"
	CodeTimeout          = "TIMEOUT"
)

// APIError is the error object of a failed reply.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ok writes a success reply: body's fields plus success=true.
func ok(c *gin.Context, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   APIError{Code: code, Message: message},
	})
}

// failErr maps a domain error onto a status and code.
func failErr(c *gin.Context, err error) {
	var verr *funnel.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   APIError{Code: CodeValidationFailed, Message: "Please correct the highlighted fields", Fields: verr.Fields},
		})
	case errors.Is(err, session.ErrNotFound):
		fail(c, http.StatusNotFound, CodeSessionNotFound, "Session not found")
	case errors.Is(err, funnel.ErrUnknownAction):
		fail(c, http.StatusBadRequest, CodeUnknownAction, err.Error())
	case funnel.IsLookupError(err):
		fail(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, funnel.ErrNoRooms):
		fail(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
	default:
		fail(c, http.StatusInternalServerError, CodeServerError, "Internal error")
	}
}
