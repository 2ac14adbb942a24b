package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"fleetflow/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// NewRouter builds the echo instance: access logging, recovery, OpenAPI
// request validation, the API routes, /health and swagger UI at /swagger/*.
func NewRouter(ctx context.Context, server *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validate, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger)))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", validate)

	v1.GET("/trips", server.ListTrips)
	v1.POST("/trips", server.CreateTrip)
	v1.POST("/trips/:tripId/dispatch", server.DispatchTrip)
	v1.POST("/trips/:tripId/complete", server.CompleteTrip)
	v1.POST("/trips/:tripId/cancel", server.CancelTrip)

	v1.GET("/vehicles", server.ListVehicles)
	v1.POST("/vehicles", server.RegisterVehicle)
	v1.DELETE("/vehicles/:vehicleId", server.DeleteVehicle)
	v1.POST("/vehicles/:vehicleId/retirement", server.ToggleVehicleRetirement)

	v1.GET("/drivers", server.ListDrivers)
	v1.POST("/drivers", server.RegisterDriver)
	v1.DELETE("/drivers/:driverId", server.DeleteDriver)
	v1.PUT("/drivers/:driverId/status", server.ChangeDriverStatus)

	v1.GET("/maintenance-logs", server.ListMaintenanceLogs)
	v1.POST("/maintenance-logs", server.OpenMaintenance)
	v1.POST("/maintenance-logs/:logId/complete", server.CompleteMaintenance)

	v1.GET("/expenses", server.ListExpenses)
	v1.POST("/expenses", server.RecordExpense)

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	logger = logger.With("component", "http_access")
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "HTTP request", attrs...)
			return nil
		},
	}
}

// errorHandler renders every error, including echo's own routing errors, as
// an Error body.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = echo.NewHTTPError(http.StatusInternalServerError)
	}

	body, ok := he.Message.(Error)
	if !ok {
		body = newError(he.Code, fmt.Sprint(he.Message))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string { return string(api.OpenAPI) }

var registerOnce sync.Once

// registerSwaggerDoc exposes the embedded document to echo-swagger.
// swag panics on a second registration under the same name.
func registerSwaggerDoc() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{})
	})
}
