package database

import (
	"fmt"
	"time"

	"church-planning-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Models returns every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.Church{},
		&models.Ministry{},
		&models.Department{},
		&models.Member{},
		&models.User{},
		&models.UserChurchRole{},
		&models.UserDepartment{},
		&models.Event{},
		&models.EventDepartment{},
		&models.Planning{},
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// SingleDebriefIndex is the partial unique index holding one EN_SERVICE_DEBRIEF row per event department
const SingleDebriefIndex = "idx_planning_single_debrief"

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	// gen_random_uuid() default on BaseModel
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// at most one debrief per event department
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ` + SingleDebriefIndex +
		` ON plannings (event_department_id) WHERE status = 'EN_SERVICE_DEBRIEF'`).Error; err != nil {
		return fmt.Errorf("create %s: %w", SingleDebriefIndex, err)
	}
	return nil
}
