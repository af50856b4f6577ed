// Package postgres provides GORM-backed implementations of the task and epic
// store ports on PostgreSQL. Whole-row updates keyed by primary key together
// with the database's read-committed isolation give the serialization the
// service layer relies on; no locking happens above the store.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the shared gorm handle so both stores and the health check ride
// on one connection pool.
type DB struct {
	gorm *gorm.DB
}

// Open connects to PostgreSQL and runs schema migration for both entities.
func Open(dsn string, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := gdb.AutoMigrate(&taskRecord{}, &epicRecord{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	log.Info("database connected and migrated")
	return &DB{gorm: gdb}, nil
}

// Name identifies the database in readiness output.
func (db *DB) Name() string {
	return "database"
}

// HealthCheck pings the underlying connection pool.
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.gorm.DB()
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
