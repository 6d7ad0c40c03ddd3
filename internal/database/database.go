// Package database opens the tracker's Postgres database, migrates the schema
// and installs the triggers that announce changes over LISTEN/NOTIFY.
package database

import (
	"fmt"
	"time"

	"performance-tracker-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options tunes Initialize. Zero values take the defaults below.
type Options struct {
	LogLevel        gormlogger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SkipMigrate     bool
	// NotifyChannel, when set, installs triggers that pg_notify this channel on every change
	NotifyChannel string
}

func (o Options) withDefaults() Options {
	if o.LogLevel == 0 {
		o.LogLevel = gormlogger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 10
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 5
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	return o
}

// Initialize opens dsn, migrates the schema unless SkipMigrate is set and installs
// the notify triggers when a channel is configured.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)

	if !o.SkipMigrate {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}

	if o.NotifyChannel != "" {
		if err := InstallNotifyTriggers(db, o.NotifyChannel); err != nil {
			return nil, fmt.Errorf("install notify triggers: %w", err)
		}
	}
	return db, nil
}

// migrate creates the tables parents first. gen_random_uuid needs pgcrypto before Postgres 13.
func migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(
		&models.Member{},
		&models.Task{},
		&models.TaskAssignment{},
		&models.Subtask{},
		&models.TaskAttachment{},
		&models.Rating{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// ParseLogLevel maps DB_LOG_LEVEL to a gorm log level; anything unknown means errors only.
func ParseLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Error
	}
}
