package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

// Config holds the service configuration.
// Environment variables are parsed with the MOTOR_ prefix, e.g. MOTOR_PORT.
type Config struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	DBPath   string `envconfig:"DB_PATH" default:"motor.db"`
	Timezone string `envconfig:"TIMEZONE" default:"Local"`

	// Cron specs with a leading seconds field.
	DueSweepSpec     string `envconfig:"DUE_SWEEP_SPEC" default:"0 0 9 * * *"`
	MileageSweepSpec string `envconfig:"MILEAGE_SWEEP_SPEC" default:"0 0 9 * * MON"`
	SchedulerEnabled bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"false"`
	SQLDebug  bool   `envconfig:"SQL_DEBUG" default:"false"`

	WhatsApp WhatsAppConfig `envconfig:"WHATSAPP"`
	SMTP     SMTPConfig     `envconfig:"SMTP"`
	RAG      RAGConfig      `envconfig:"RAG"`
	Line     LineConfig     `envconfig:"LINE"`
}

// WhatsAppConfig configures the messaging channel (WhatsApp Cloud API).
type WhatsAppConfig struct {
	BaseURL       string        `envconfig:"BASE_URL" default:"https://graph.facebook.com/v20.0"`
	PhoneNumberID string        `envconfig:"PHONE_NUMBER_ID"`
	AccessToken   string        `envconfig:"ACCESS_TOKEN"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"15s"`
}

// SMTPConfig configures the email channel.
type SMTPConfig struct {
	Host          string        `envconfig:"HOST" default:"localhost"`
	Port          int           `envconfig:"PORT" default:"587"`
	Username      string        `envconfig:"USERNAME"`
	Password      string        `envconfig:"PASSWORD"`
	From          string        `envconfig:"FROM" default:"no-reply@motor.local"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"15s"`
	SubjectPrefix string        `envconfig:"SUBJECT_PREFIX" default:"تذكير صيانة"`
}

// RAGConfig configures the maintenance generation source.
type RAGConfig struct {
	BaseURL string        `envconfig:"BASE_URL" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"60s"`
}

// LineConfig configures the optional LINE ops bot. It is disabled unless all fields are set.
type LineConfig struct {
	ChannelSecret string `envconfig:"CHANNEL_SECRET"`
	ChannelToken  string `envconfig:"CHANNEL_ACCESS_TOKEN"`
	AdminUserID   string `envconfig:"ADMIN_USER_ID"`
}

// Enabled reports whether the LINE ops bot should be started.
func (c LineConfig) Enabled() bool {
	return c.ChannelSecret != "" && c.ChannelToken != "" && c.AdminUserID != ""
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MOTOR", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that envconfig cannot.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db path is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.DueSweepSpec); err != nil {
		return fmt.Errorf("invalid due sweep spec %q: %w", c.DueSweepSpec, err)
	}
	if _, err := parser.Parse(c.MileageSweepSpec); err != nil {
		return fmt.Errorf("invalid mileage sweep spec %q: %w", c.MileageSweepSpec, err)
	}
	return nil
}

// Location resolves the calendar used to decide "today".
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
