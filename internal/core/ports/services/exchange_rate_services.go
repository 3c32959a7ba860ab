package services

import (
	"context"

	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations of the rate configuration screen.
type ExchangeRateReaderSvc interface {
	// Load returns the screen state, fetching the live rate when live mode is on.
	Load(ctx context.Context) (*domain.RateConfigState, error)
	// GetSavedRate returns the active saved rate.
	GetSavedRate(ctx context.Context) (*domain.ExchangeRate, error)
	// CurrentRate returns the rate used to convert base currency amounts.
	CurrentRate(ctx context.Context) (decimal.Decimal, error)
}

// ExchangeRateWriterSvc defines write operations of the rate configuration screen.
type ExchangeRateWriterSvc interface {
	// ToggleMode switches between live and manual rates, clearing the inactive value.
	ToggleMode(ctx context.Context, useLive bool) (*domain.RateConfigState, error)
	// FetchLiveRate refreshes the live rate, using the cache while it is fresh.
	FetchLiveRate(ctx context.Context) (*domain.RateConfigState, error)
	// SaveManualRate persists a user-entered rate, at most once per calendar day.
	SaveManualRate(ctx context.Context, rate decimal.Decimal) (*domain.RateConfigState, error)
	// SaveLiveRate persists the current live rate, at most once per calendar day.
	SaveLiveRate(ctx context.Context) (*domain.RateConfigState, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
