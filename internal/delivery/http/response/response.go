package response

import (
	"net/http"

	domainerrors "storyhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Payload holds the resource fields written next to success and message,
// e.g. {"blog": ...} or {"count": 2, "comments": [...]}.
type Payload map[string]any

// Success writes {success: true, message, ...payload}.
func Success(c echo.Context, statusCode int, message string, payload Payload) error {
	if message == "" {
		message = "Success"
	}

	body := make(map[string]any, len(payload)+2)
	for key, value := range payload {
		body[key] = value
	}
	body["success"] = true
	body["message"] = message

	return c.JSON(statusCode, body)
}

// Error writes {success: false, message, error: {code, details}}.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError 400 for request bodies that cannot be decoded
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}

// InvalidID 400 for malformed path identifiers
func InvalidID(c echo.Context, param string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrInvalidID.ErrorCode(), domainerrors.ErrInvalidID.Message(), param+" must be a valid UUID")
}
