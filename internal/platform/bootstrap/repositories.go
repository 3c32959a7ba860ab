// Package bootstrap builds the repository provider shared by the server and the CLI.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Odongfelix/jweb/internal/adapters/accountingapi"
	"github.com/Odongfelix/jweb/internal/adapters/livequote"
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	"github.com/Odongfelix/jweb/internal/platform/config"
	"github.com/Odongfelix/jweb/internal/repositories/database/boltdb"
	"github.com/Odongfelix/jweb/internal/repositories/database/pgsql"
	"github.com/Odongfelix/jweb/pkg/database"
)

// MigrationsPath is where the PostgreSQL rate store migrations are read from.
const MigrationsPath = "file://migrations"

// NewRepositories opens the configured rate store and builds the remote clients.
// The returned cleanup closes the rate store.
func NewRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	accounting := accountingapi.NewClient(accountingapi.ClientConfig{
		BaseURL:      cfg.AccountingAPIURL,
		Timeout:      cfg.AccountingAPITimeout,
		ClientID:     cfg.AccountingClientID,
		ClientSecret: cfg.AccountingClientSecret,
		TokenURL:     cfg.AccountingTokenURL,
	})
	liveRates := livequote.NewClient(cfg.LiveRateAPIURL, cfg.LocalCurrency, cfg.LiveRateTimeout, &http.Client{})

	switch cfg.RateStore {
	case config.RateStorePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, MigrationsPath, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}

		cleanup := func() {
			database.ClosePgxPool(dbPool)
			logger.Info("PostgreSQL connection pool closed.")
		}
		return pgsql.NewRepositoryProvider(dbPool, accounting, liveRates), cleanup, nil

	default:
		store, err := boltdb.Open(cfg.BoltPath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to open rate store: %w", err)
		}
		logger.Info("Rate store opened", slog.String("path", cfg.BoltPath))

		cleanup := func() {
			if err := store.Close(); err != nil {
				logger.Error("Error closing rate store", slog.String("error", err.Error()))
			}
		}
		return portsrepo.RepositoryProvider{
			ExchangeRateRepo: store,
			LiveRateSource:   liveRates,
			AccountingRepo:   accounting,
		}, cleanup, nil
	}
}
