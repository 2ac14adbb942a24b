package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code       int      `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

func newError(code int, message string, violations ...string) Error {
	return Error{Code: code, Message: message, Violations: violations}
}

// statusFor maps an application error to an HTTP status. Order matters:
// a conflict may carry validation violations, and a validation error may
// carry not-found violations.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrResourceConflict):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, vehicle.ErrVehicleInUse),
		errors.Is(err, vehicle.ErrVehicleHasActiveTrips),
		errors.Is(err, vehicle.ErrVehicleInShop),
		errors.Is(err, driver.ErrDriverOnTrip),
		errors.Is(err, driver.ErrDriverHasActiveTrips),
		errors.Is(err, maintenance.ErrMaintenanceAlreadyPending):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, trip.ErrInvalidOdometer),
		errors.Is(err, vehicle.ErrOdometerDecrease),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func violationsOf(err error) []string {
	var v *errs.ValidationError
	if !errors.As(err, &v) {
		return nil
	}
	out := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		out = append(out, violation.Error())
	}
	return out
}

// respondError writes err as an Error body. Unexpected errors are logged and
// hidden behind a generic message.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(code, newError(code, "Internal server error"))
	}
	return ctx.JSON(code, newError(code, err.Error(), violationsOf(err)...))
}
