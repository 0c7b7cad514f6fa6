package router

import (
	"fmt"
	"motor/internal/interfaces/api/handler"
	"motor/internal/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the dependencies for the router.
type Config struct {
	ReminderHandler *handler.ReminderHandler
	SweepHandler    *handler.SweepHandler
	LineHandler     *handler.LineHandler // nil when the ops bot is disabled
	Logger          logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.With("request_id", v.RequestID).Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s",
				v.Method, v.URI, v.Status, v.Latency,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, handler.HeaderUserID, "X-Line-Signature"},
		MaxAge:       300,
	}))

	// Routes
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/vehicles/:vehicleID/reminders", cfg.ReminderHandler.List)
	api.POST("/vehicles/:vehicleID/reminders", cfg.ReminderHandler.Create)
	api.POST("/vehicles/:vehicleID/reminders/generate", cfg.ReminderHandler.Generate)
	api.PUT("/reminders/:reminderID", cfg.ReminderHandler.Update)
	api.DELETE("/reminders/:reminderID", cfg.ReminderHandler.Delete)

	internal := e.Group("/internal")
	internal.GET("/reminders", cfg.ReminderHandler.ListAll)
	internal.POST("/sweeps/due", cfg.SweepHandler.RunDue)
	internal.POST("/sweeps/mileage", cfg.SweepHandler.RunMileage)

	// LINE Webhook Endpoint
	// Note: LINE Platform requires POST for webhook
	if cfg.LineHandler != nil {
		e.POST("/callback", cfg.LineHandler.HandleWebhook)
	}

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
