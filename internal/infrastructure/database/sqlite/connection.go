package sqlite

import (
	"fmt"
	"motor/internal/domain/entity"
	"motor/internal/pkg/logger"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormWriter routes gorm's log output through the application logger.
type gormWriter struct {
	log logger.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Debug(fmt.Sprintf(format, args...))
}

// Options configures Open.
type Options struct {
	// Path is a file path or an sqlite DSN such as "file::memory:?cache=shared".
	Path string
	// SQLDebug logs every statement instead of only slow ones and errors.
	SQLDebug bool
}

// Open connects to the SQLite database and migrates the schema.
func Open(opts Options, log logger.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if opts.SQLDebug {
		level = gormlogger.Info
	}
	gormLog := gormlogger.New(
		gormWriter{log: log.With("component", "gorm")},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true, // Not-found is handled by callers
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(opts.Path), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", opts.Path, err)
	}

	// SQLite allows a single writer; serialize through one connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info(fmt.Sprintf("Connected to database %s and migrated schema.", opts.Path))
	return db, nil
}

// AutoMigrate automatically migrates the database schema for the defined entities.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Vehicle{},
		&entity.Reminder{},
	)
	if err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}

// Close closes the database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}
	return sqlDB.Close()
}
