package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-directory/pkg/errors"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []errors.FieldError `json:"errors,omitempty"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithSuccess sends data as the body with the given status
func RespondWithSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// RespondWithMessage sends a confirmation message
func RespondWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// RespondWithError sends an error response. Errors that are not an AppError,
// and internal AppErrors, are reported with fallback so no detail leaks.
func RespondWithError(c *gin.Context, err error, fallback string) {
	appErr, ok := errors.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: fallback})
		return
	}

	status := appErr.StatusCode()
	message := appErr.Message
	if status >= http.StatusInternalServerError {
		message = fallback
	}

	c.JSON(status, ErrorResponse{
		Message: message,
		Errors:  appErr.Details,
	})
}
