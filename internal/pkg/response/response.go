package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/minjaekim/sportsmate-web/pkg/errors"
)

// Body is the envelope every gateway endpoint answers with. It mirrors
// the shape the mobile pages already consume from the backend.
type Body struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{
		Success: true,
		Data:    data,
	})
}

// Message sends a 200 OK acknowledgment without a payload
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Body{
		Success: true,
		Message: message,
	})
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, Body{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusForbidden, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// TooManyRequests sends a 429 Too Many Requests error
func TooManyRequests(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusTooManyRequests, message, errorCode...)
}

// BadGateway sends a 502 Bad Gateway error
func BadGateway(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadGateway, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request body
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// Upstream maps a backend call failure to the matching gateway status.
// The page stays usable: it gets the envelope with a human-readable
// message rather than a blank failure.
func Upstream(c *gin.Context, err error) {
	message := "request failed"
	if err != nil {
		message = err.Error()
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		NotFound(c, message, "NOT_FOUND")
	case errors.Is(err, apperrors.ErrUnauthorized):
		Unauthorized(c, message, "UNAUTHORIZED")
	case errors.Is(err, apperrors.ErrForbidden):
		Forbidden(c, message, "FORBIDDEN")
	case errors.Is(err, apperrors.ErrBadRequest):
		BadRequest(c, message, "BAD_REQUEST")
	case errors.Is(err, apperrors.ErrUnavailable):
		BadGateway(c, message, "BACKEND_UNREACHABLE")
	default:
		BadGateway(c, message, "BACKEND_ERROR")
	}
}
