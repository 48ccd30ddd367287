package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionvault/internal/model"
)

// handleError converts the error taxonomy to an HTTP status. Internal detail
// never reaches the caller: unexpected errors collapse to a generic message
// and are logged where they occur.
func handleError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, model.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusConflict, model.ErrUsernameTaken.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, model.ErrInvalidCredentials.Error())
	case errors.Is(err, model.ErrNoActiveToken),
		errors.Is(err, model.ErrInvalidSession),
		errors.Is(err, model.ErrTokenInvalid):
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	case errors.Is(err, model.ErrSessionNotFound), errors.Is(err, model.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, model.ErrStoreUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "temporarily unavailable, please try again")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler renders every error as a uniform {"error": message} body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		httpErr = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	message, ok := httpErr.Message.(string)
	if !ok {
		message = http.StatusText(httpErr.Code)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Code)
		return
	}
	_ = c.JSON(httpErr.Code, echo.Map{"error": message})
}
