// Package response renders the JSON envelope used by every endpoint:
// {success, message?, data?, token?, user?, errors?} with the HTTP status
// conveying the outcome class.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "titlehub/internal/errors"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Token   string      `json:"token,omitempty"`
	User    interface{} `json:"user,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// OK writes a success envelope with the given status and data.
func OK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// Message writes a success envelope carrying only a message.
func Message(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message})
}

// Auth writes a success envelope carrying a token and the user record.
func Auth(c echo.Context, status int, token string, user interface{}, message string) error {
	return c.JSON(status, Envelope{Success: true, Token: token, User: user, Message: message})
}

// Fail writes a failure envelope with an explicit status and message.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// ValidationFail writes a 400 envelope carrying field errors.
func ValidationFail(c echo.Context, errs interface{}) error {
	return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "validation failed", Errors: errs})
}

// Error maps a domain error onto the envelope via the shared taxonomy.
func Error(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, Envelope{Success: false, Message: httpErr.Message})
}
