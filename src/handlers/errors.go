package handlers

import (
	"errors"
	"net/http"

	"rollout-config/src/models"
	"rollout-config/src/services"

	"github.com/labstack/echo/v4"
)

// respond writes the status envelope shared by every endpoint
func respond(c echo.Context, status int, message interface{}) error {
	return c.JSON(status, models.Response{Status: status, Message: message})
}

// decodeBody reads the request body as JSON whatever the Content-Type says.
// Browsers posting JSON.stringify output send text/plain.
func decodeBody(c echo.Context, target interface{}) error {
	return c.Echo().JSONSerializer.Deserialize(c, target)
}

// invalidBody answers a request body that could not be decoded
func invalidBody(c echo.Context, err error) error {
	return respond(c, http.StatusBadRequest, models.ErrorDetail{
		Error:   "Invalid JSON",
		Code:    "INVALID_REQUEST_FORMAT",
		Details: map[string]string{"parse_error": err.Error()},
	})
}

// handleError converts service errors to appropriate HTTP responses
func handleError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	var consistencyErr *services.StorageConsistencyError

	switch {
	case errors.As(err, &validationErr):
		detail := models.ErrorDetail{
			Error: validationErr.Message,
			Code:  "VALIDATION_FAILED",
		}
		if len(validationErr.Errors) > 0 {
			detail.Details = map[string][]services.FieldError{
				"validation_errors": validationErr.Errors,
			}
		}
		return respond(c, http.StatusBadRequest, detail)
	case errors.As(err, &consistencyErr):
		c.Logger().Errorf("write verification failed: %v", err)
		return respond(c, http.StatusInternalServerError, models.ErrorDetail{
			Error: consistencyErr.Error(),
			Code:  "STORAGE_CONSISTENCY_FAILED",
		})
	default:
		c.Logger().Errorf("request failed: %v", err)
		return respond(c, http.StatusInternalServerError, models.ErrorDetail{
			Error: "An unexpected error occurred",
			Code:  "INTERNAL_SERVER_ERROR",
		})
	}
}

// HTTPErrorHandler renders errors raised outside the handlers (unknown route,
// wrong method, oversized body) in the same envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "An unexpected error occurred"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch status {
		case http.StatusNotFound:
			message = "Not found"
		case http.StatusMethodNotAllowed:
			message = "Method not allowed"
		default:
			message = http.StatusText(status)
		}
	} else {
		c.Logger().Error(err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = respond(c, status, models.ErrorDetail{
			Error: message,
			Code:  errorCode(status),
		})
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
