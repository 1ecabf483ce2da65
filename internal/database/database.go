// Package database открывает подключение GORM и применяет миграции goose.
package database

import (
	"embed"
	"fmt"
	"time"

	"github.com/cafe-employee-api/internal/config"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const connectAttempts = 30

// Open подключается к БД. PostgreSQL может подниматься дольше сервиса,
// поэтому подключение к нему повторяется.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.DSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return db, nil

	case config.DriverPostgres:
		var db *gorm.DB
		var err error

		for attempt := 0; attempt < connectAttempts; attempt++ {
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
			if err == nil {
				sqlDB, _ := db.DB()
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
			}
			time.Sleep(time.Second)
		}

		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate применяет встроенные миграции
func Migrate(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	dialect := "postgres"
	if driver == config.DriverSQLite {
		dialect = "sqlite3"
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
