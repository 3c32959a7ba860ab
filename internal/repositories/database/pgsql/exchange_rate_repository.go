package pgsql

import (
	"context"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// settingsRowID is the id of the single settings row.
const settingsRowID = 1

// PgxExchangeRateRepository stores the rate settings in the single-row mcurrency_rate_settings table.
type PgxExchangeRateRepository struct {
	BaseRepository
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindSavedRate retrieves the active saved rate.
func (r *PgxExchangeRateRepository) FindSavedRate(ctx context.Context) (*domain.ExchangeRate, error) {
	var (
		rate   decimal.NullDecimal
		at     *time.Time
		source *string
	)
	found, err := r.queryRow(ctx, "failed to find saved rate",
		`SELECT saved_rate, saved_at, saved_source FROM mcurrency_rate_settings WHERE id = $1`,
		[]any{settingsRowID}, &rate, &at, &source)
	if err != nil {
		return nil, err
	}
	if !found || !rate.Valid || at == nil {
		return nil, apperrors.NewNotFoundError("saved rate not found")
	}

	saved := &domain.ExchangeRate{Rate: rate.Decimal, LastUpdated: *at, Source: domain.RateSourceManual}
	if source != nil {
		saved.Source = domain.RateSource(*source)
	}
	return saved, nil
}

// FindLiveRateCache retrieves the cached live quote.
func (r *PgxExchangeRateRepository) FindLiveRateCache(ctx context.Context) (*domain.LiveRateCacheEntry, error) {
	var (
		rate decimal.NullDecimal
		at   *time.Time
	)
	found, err := r.queryRow(ctx, "failed to find live rate cache",
		`SELECT live_rate, live_fetched_at FROM mcurrency_rate_settings WHERE id = $1`,
		[]any{settingsRowID}, &rate, &at)
	if err != nil {
		return nil, err
	}
	if !found || !rate.Valid || at == nil {
		return nil, apperrors.NewNotFoundError("live rate cache not found")
	}
	return &domain.LiveRateCacheEntry{Rate: rate.Decimal, Timestamp: *at}, nil
}

// FindUseLiveRates retrieves the persisted rate mode.
func (r *PgxExchangeRateRepository) FindUseLiveRates(ctx context.Context) (bool, bool, error) {
	var useLive *bool
	found, err := r.queryRow(ctx, "failed to find rate mode",
		`SELECT use_live_rates FROM mcurrency_rate_settings WHERE id = $1`,
		[]any{settingsRowID}, &useLive)
	if err != nil {
		return false, false, err
	}
	if !found || useLive == nil {
		return false, false, nil
	}
	return *useLive, true, nil
}

// SaveRate upserts the saved rate columns.
func (r *PgxExchangeRateRepository) SaveRate(ctx context.Context, rate domain.ExchangeRate) error {
	return r.exec(ctx, "failed to save rate", `
		INSERT INTO mcurrency_rate_settings (id, saved_rate, saved_at, saved_source, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET saved_rate = EXCLUDED.saved_rate, saved_at = EXCLUDED.saved_at,
			saved_source = EXCLUDED.saved_source, updated_at = now()`,
		settingsRowID, rate.Rate, rate.LastUpdated, string(rate.Source),
	)
}

// SaveLiveRateCache upserts the live rate cache columns.
func (r *PgxExchangeRateRepository) SaveLiveRateCache(ctx context.Context, entry domain.LiveRateCacheEntry) error {
	return r.exec(ctx, "failed to save live rate cache", `
		INSERT INTO mcurrency_rate_settings (id, live_rate, live_fetched_at, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET live_rate = EXCLUDED.live_rate, live_fetched_at = EXCLUDED.live_fetched_at, updated_at = now()`,
		settingsRowID, entry.Rate, entry.Timestamp,
	)
}

// SaveUseLiveRates upserts the rate mode column.
func (r *PgxExchangeRateRepository) SaveUseLiveRates(ctx context.Context, useLive bool) error {
	return r.exec(ctx, "failed to save rate mode", `
		INSERT INTO mcurrency_rate_settings (id, use_live_rates, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET use_live_rates = EXCLUDED.use_live_rates, updated_at = now()`,
		settingsRowID, useLive,
	)
}
