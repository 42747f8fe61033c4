package database

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Pure-Go driver registered as "sqlite".
	_ "modernc.org/sqlite"
)

// IsPostgresDSN reports whether dsn points at PostgreSQL rather than a sqlite file.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Connect opens a gorm handle: PostgreSQL for postgres URLs, sqlite for anything else.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}

	if IsPostgresDSN(dsn) {
		slog.Info("Connecting to PostgreSQL via gorm")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	slog.Info("Using SQLite for local development", slog.String("dsn", dsn))
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// sqlite allows one writer; a single connection also keeps in-memory databases alive.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
