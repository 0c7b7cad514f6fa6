// Package bootstrap wires the application from configuration.
package bootstrap

import (
	"fmt"
	"motor/internal/application/composer"
	"motor/internal/application/service"
	"motor/internal/infrastructure/database/sqlite"
	"motor/internal/infrastructure/email"
	lineClient "motor/internal/infrastructure/line"
	"motor/internal/infrastructure/rag"
	"motor/internal/infrastructure/scheduler"
	"motor/internal/infrastructure/whatsapp"
	"motor/internal/pkg/config"
	"motor/internal/pkg/logger"
	"time"

	"gorm.io/gorm"
)

// App holds the wired services.
type App struct {
	DB        *gorm.DB
	Dispatch  service.DispatchService
	Reminders service.ReminderService
	Scheduler service.SchedulerService
	Line      *lineClient.Client // nil when the ops bot is disabled
	Location  *time.Location
	log       logger.Logger
}

// NewLogger builds the application logger from cfg.
func NewLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Service: "motor"})
}

// New opens the database and wires repositories, channels and services.
// The scheduler is built but not started.
func New(cfg *config.Config, log logger.Logger) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// --- Infrastructure ---
	db, err := sqlite.Open(sqlite.Options{Path: cfg.DBPath, SQLDebug: cfg.SQLDebug}, log)
	if err != nil {
		return nil, err
	}
	reminderRepo := sqlite.NewReminderRepository(db)
	vehicleRepo := sqlite.NewVehicleRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	messaging := whatsapp.NewClient(whatsapp.Config{
		BaseURL:       cfg.WhatsApp.BaseURL,
		PhoneNumberID: cfg.WhatsApp.PhoneNumberID,
		AccessToken:   cfg.WhatsApp.AccessToken,
		Timeout:       cfg.WhatsApp.Timeout,
	}, log.With("channel", whatsapp.ChannelName))
	mailer := email.NewClient(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Timeout:  cfg.SMTP.Timeout,
	}, log.With("channel", email.ChannelName))
	source := rag.NewClient(cfg.RAG.BaseURL, cfg.RAG.Timeout)

	var ops service.OpsNotifier = service.NewNopOpsNotifier()
	var line *lineClient.Client
	if cfg.Line.Enabled() {
		line, err = lineClient.NewClient(cfg.Line.ChannelSecret, cfg.Line.ChannelToken, cfg.Line.AdminUserID, log.With("component", "line"))
		if err != nil {
			_ = sqlite.Close(db)
			return nil, err
		}
		ops = line
	} else {
		log.Info("LINE ops bot disabled.")
	}

	// --- Application Services ---
	dispatch := service.NewDispatchService(
		reminderRepo,
		vehicleRepo,
		composer.New(cfg.SMTP.SubjectPrefix),
		messaging,
		mailer,
		loc,
		time.Now,
		log.With("component", "dispatch"),
	)
	reminders := service.NewReminderService(reminderRepo, vehicleRepo, userRepo, source, log.With("component", "reminders"))
	sched := service.NewSchedulerService(scheduler.NewScheduler(loc, log), dispatch, ops, log)
	log.Info("Application services initialized.")

	return &App{
		DB:        db,
		Dispatch:  dispatch,
		Reminders: reminders,
		Scheduler: sched,
		Line:      line,
		Location:  loc,
		log:       log,
	}, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	if err := sqlite.Close(a.DB); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	a.log.Info("Database connection closed.")
	return nil
}
