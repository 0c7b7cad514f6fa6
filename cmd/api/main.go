package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application wiring
	"motor/internal/bootstrap"

	// Interfaces Layer
	"motor/internal/interfaces/api/handler"
	"motor/internal/interfaces/api/router"

	// Packages
	"motor/internal/pkg/config"
	appLogger "motor/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, app *bootstrap.App, log appLogger.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first
	app.Scheduler.Stop()

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err)
	}

	if err := app.Close(); err != nil {
		log.Error("Error closing database", err)
	}

	log.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	appLog := bootstrap.NewLogger(cfg)
	appLog.Info("Logger initialized.")

	app, err := bootstrap.New(cfg, appLog)
	if err != nil {
		appLog.Error("Failed to initialize application", err)
		os.Exit(1)
	}

	// --- Schedules ---
	if cfg.SchedulerEnabled {
		if err := app.Scheduler.RegisterSweeps(cfg.DueSweepSpec, cfg.MileageSweepSpec); err != nil {
			appLog.Error("Failed to register sweeps", err)
			_ = app.Close()
			os.Exit(1)
		}
		app.Scheduler.Start()
	} else {
		appLog.Warn("In-process scheduler disabled; sweeps run only when triggered externally.")
	}

	// --- API Handlers ---
	routerCfg := &router.Config{
		ReminderHandler: handler.NewReminderHandler(app.Reminders, appLog),
		SweepHandler:    handler.NewSweepHandler(app.Dispatch),
		Logger:          appLog,
	}
	if app.Line != nil {
		routerCfg.LineHandler = handler.NewLineHandler(app.Line, app.Dispatch, appLog)
	}
	appLog.Info("API handlers initialized.")

	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // manual sweeps run inside the request
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, app, appLog, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
