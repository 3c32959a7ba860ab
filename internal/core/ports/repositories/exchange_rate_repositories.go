package repositories

import (
	"context"

	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for the persisted rate settings.
type ExchangeRateReader interface {
	// FindSavedRate returns the active saved rate, or apperrors.ErrNotFound when none was ever saved.
	FindSavedRate(ctx context.Context) (*domain.ExchangeRate, error)
	// FindLiveRateCache returns the cached live quote, or apperrors.ErrNotFound.
	FindLiveRateCache(ctx context.Context) (*domain.LiveRateCacheEntry, error)
	// FindUseLiveRates returns the persisted rate mode; ok is false when it was never set.
	FindUseLiveRates(ctx context.Context) (useLive bool, ok bool, err error)
}

// ExchangeRateWriter defines write operations for the persisted rate settings.
type ExchangeRateWriter interface {
	// SaveRate overwrites the active saved rate.
	SaveRate(ctx context.Context, rate domain.ExchangeRate) error
	// SaveLiveRateCache overwrites the cached live quote.
	SaveLiveRateCache(ctx context.Context, entry domain.LiveRateCacheEntry) error
	// SaveUseLiveRates persists the rate mode.
	SaveUseLiveRates(ctx context.Context, useLive bool) error
}

// ExchangeRateRepositoryFacade combines all rate store operations.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// LiveRateSource fetches a quote from an external rate provider.
type LiveRateSource interface {
	// FetchRate returns how many units of the quote currency one unit of the base currency buys.
	FetchRate(ctx context.Context) (decimal.Decimal, error)
}
