// Package storage opens the repository provider for the configured database.
package storage

import (
	"context"
	"log/slog"

	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/config"
	"github.com/Shunea/be-easyreserv-sub002/internal/repositories/database/gormdb"
	"github.com/Shunea/be-easyreserv-sub002/internal/repositories/database/pgsql"
	"github.com/Shunea/be-easyreserv-sub002/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Open picks the pgx adapter for PostgreSQL URLs and the gorm adapter otherwise.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.UsesPostgres() {
		return openPostgres(ctx, cfg, logger)
	}
	return openGorm(cfg, logger)
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.RunMigrations {
		if err := RunMigrations(cfg, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{MaxConns: cfg.DBMaxConns, ApplicationName: "easyreserv"})
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	var replica *pgxpool.Pool
	if cfg.ReadReplicaURL != "" {
		replica, err = database.NewPgxPool(ctx, cfg.ReadReplicaURL, database.PoolOptions{MaxConns: cfg.DBMaxConns, ApplicationName: "easyreserv-reports"})
		if err != nil {
			dbPool.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Read replica pool established; reports will read from it.")
	}

	closeFn := func() {
		database.ClosePgxPool(replica)
		database.ClosePgxPool(dbPool)
	}
	return pgsql.NewRepositoryProvider(dbPool, replica), closeFn, nil
}

func openGorm(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = "easyreserv.db"
	}
	db, err := database.Connect(dsn)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	if cfg.EnableDBCheck {
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}
	if err := gormdb.AutoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Schema migrated with gorm")

	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database", slog.String("error", err.Error()))
		}
	}
	return gormdb.NewRepositoryProvider(db), closeFn, nil
}
