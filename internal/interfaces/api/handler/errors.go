package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	appErrors "motor/internal/pkg/errors"
)

// HeaderUserID carries the authenticated caller id set by the upstream auth layer.
const HeaderUserID = "X-User-ID"

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrValidation), errors.Is(err, appErrors.ErrMileageRequired):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrUserNotFound),
		errors.Is(err, appErrors.ErrVehicleNotFound),
		errors.Is(err, appErrors.ErrReminderNotFound),
		errors.Is(err, appErrors.ErrManualUnavailable):
		return http.StatusNotFound
	case errors.Is(err, appErrors.ErrUnauthorized), errors.Is(err, appErrors.ErrVehicleInaccessible):
		return http.StatusForbidden
	case errors.Is(err, appErrors.ErrGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = appErrors.ErrInternalServer.Error()
	}
	return c.JSON(status, errorResponse{Error: msg})
}

func callerID(c echo.Context) (uint, error) {
	raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid "+HeaderUserID+" header")
	}
	return uint(id), nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, appErrors.NewValidationError(name, "must be a positive integer")
	}
	return uint(id), nil
}
