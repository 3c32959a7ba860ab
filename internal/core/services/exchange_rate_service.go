package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// rateConfigService implements the ExchangeRateSvcFacade interface
type rateConfigService struct {
	BaseService
	store          portsrepo.ExchangeRateRepositoryFacade
	source         portsrepo.LiveRateSource
	cacheTTL       time.Duration
	location       *time.Location
	useLiveDefault bool

	saveMu   sync.Mutex
	fetches  singleflight.Group
	fetching atomic.Int32
}

// RateConfigOption is a functional option for configuring the rate configuration service
type RateConfigOption func(*rateConfigService)

// WithRateClock sets the clock used for the once-per-day rule and cache freshness.
func WithRateClock(now func() time.Time) RateConfigOption {
	return func(s *rateConfigService) {
		s.Now = now
	}
}

// WithRateLocation sets the time zone calendar days are evaluated in.
func WithRateLocation(loc *time.Location) RateConfigOption {
	return func(s *rateConfigService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithLiveRateCacheTTL sets how long a fetched live rate is reused.
func WithLiveRateCacheTTL(ttl time.Duration) RateConfigOption {
	return func(s *rateConfigService) {
		s.cacheTTL = ttl
	}
}

// WithDefaultUseLiveRates sets the rate mode used until one is persisted.
func WithDefaultUseLiveRates(useLive bool) RateConfigOption {
	return func(s *rateConfigService) {
		s.useLiveDefault = useLive
	}
}

// NewRateConfigService creates the rate configuration service with the provided options
func NewRateConfigService(store portsrepo.ExchangeRateRepositoryFacade, source portsrepo.LiveRateSource, options ...RateConfigOption) portssvc.ExchangeRateSvcFacade {
	svc := &rateConfigService{
		store:          store,
		source:         source,
		cacheTTL:       time.Hour,
		location:       time.UTC,
		useLiveDefault: true,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*rateConfigService)(nil)

// Load returns the screen state, fetching the live rate when live mode is on.
func (s *rateConfigService) Load(ctx context.Context) (*domain.RateConfigState, error) {
	useLive, err := s.useLiveRates(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.baseState(ctx, useLive)
	if err != nil {
		return nil, err
	}
	if useLive {
		s.fillLiveRate(ctx, state)
	}
	return state, nil
}

// GetSavedRate returns the active saved rate.
func (s *rateConfigService) GetSavedRate(ctx context.Context) (*domain.ExchangeRate, error) {
	saved, err := s.store.FindSavedRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no exchange rate has been saved", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to read saved exchange rate")
		return nil, fmt.Errorf("failed to read saved exchange rate: %w", err)
	}
	return saved, nil
}

// CurrentRate returns the saved rate, which is what journal entries convert with.
func (s *rateConfigService) CurrentRate(ctx context.Context) (decimal.Decimal, error) {
	saved, err := s.GetSavedRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no exchange rate is configured", apperrors.ErrRateUnavailable)
		}
		return decimal.Zero, err
	}
	if !saved.Rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: saved exchange rate %s is not positive", apperrors.ErrRateUnavailable, saved.Rate.String())
	}
	return saved.Rate, nil
}

// ToggleMode persists the mode. Live mode clears the manual rate and fetches a
// live rate; manual mode leaves the live rate empty.
func (s *rateConfigService) ToggleMode(ctx context.Context, useLive bool) (*domain.RateConfigState, error) {
	if err := s.store.SaveUseLiveRates(ctx, useLive); err != nil {
		s.LogError(ctx, err, "Failed to persist rate mode", slog.Bool("use_live_rates", useLive))
		return nil, fmt.Errorf("failed to persist rate mode: %w", err)
	}
	s.LogInfo(ctx, "Rate mode changed", slog.Bool("use_live_rates", useLive))

	state, err := s.baseState(ctx, useLive)
	if err != nil {
		return nil, err
	}
	if useLive {
		s.fillLiveRate(ctx, state)
	}
	return state, nil
}

// FetchLiveRate refreshes the live rate. Fetch failures end up in FetchError.
func (s *rateConfigService) FetchLiveRate(ctx context.Context) (*domain.RateConfigState, error) {
	useLive, err := s.useLiveRates(ctx)
	if err != nil {
		return nil, err
	}
	state, err := s.baseState(ctx, useLive)
	if err != nil {
		return nil, err
	}
	s.fillLiveRate(ctx, state)
	return state, nil
}

// SaveManualRate persists a user-entered rate.
func (s *rateConfigService) SaveManualRate(ctx context.Context, rate decimal.Decimal) (*domain.RateConfigState, error) {
	if !rate.IsPositive() {
		return nil, apperrors.ValidationErrors{"rate": "Rate must be greater than zero"}
	}
	if err := s.saveOncePerDay(ctx, rate, domain.RateSourceManual); err != nil {
		return nil, err
	}
	return s.Load(ctx)
}

// SaveLiveRate persists the current live rate, fetching one if the cache is stale.
func (s *rateConfigService) SaveLiveRate(ctx context.Context) (*domain.RateConfigState, error) {
	rate, err := s.liveRate(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Live rate unavailable for save")
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, domain.LiveRateFetchError)
	}
	if err := s.saveOncePerDay(ctx, rate, domain.RateSourceLive); err != nil {
		return nil, err
	}
	return s.Load(ctx)
}

// saveOncePerDay holds saveMu across the check and the write so concurrent
// saves on the same day cannot both succeed.
func (s *rateConfigService) saveOncePerDay(ctx context.Context, rate decimal.Decimal, source domain.RateSource) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	now := s.now()
	saved, err := s.findSavedRate(ctx)
	if err != nil {
		return err
	}
	if !s.canSave(saved, now) {
		return fmt.Errorf("%w: a rate has already been saved today", apperrors.ErrConflict)
	}

	entry := domain.ExchangeRate{Rate: rate, LastUpdated: now, Source: source}
	if err := s.store.SaveRate(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("rate", rate.String()))
		return fmt.Errorf("failed to save exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate saved",
		slog.String("rate", rate.String()),
		slog.String("source", string(source)))
	return nil
}

func (s *rateConfigService) canSave(saved *domain.ExchangeRate, now time.Time) bool {
	return saved == nil || !domain.SameCalendarDay(saved.LastUpdated, now, s.location)
}

// findSavedRate returns nil without error when no rate was ever saved.
func (s *rateConfigService) findSavedRate(ctx context.Context) (*domain.ExchangeRate, error) {
	saved, err := s.store.FindSavedRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to read saved exchange rate")
		return nil, fmt.Errorf("failed to read saved exchange rate: %w", err)
	}
	return saved, nil
}

func (s *rateConfigService) useLiveRates(ctx context.Context) (bool, error) {
	useLive, ok, err := s.store.FindUseLiveRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read rate mode")
		return false, fmt.Errorf("failed to read rate mode: %w", err)
	}
	if !ok {
		return s.useLiveDefault, nil
	}
	return useLive, nil
}

func (s *rateConfigService) baseState(ctx context.Context, useLive bool) (*domain.RateConfigState, error) {
	saved, err := s.findSavedRate(ctx)
	if err != nil {
		return nil, err
	}

	state := &domain.RateConfigState{
		UseLiveRates:       useLive,
		CanSaveRate:        s.canSave(saved, s.now()),
		IsFetchingLiveRate: s.fetching.Load() > 0,
	}
	if saved != nil {
		rate := saved.Rate
		lastUpdated := saved.LastUpdated
		state.SavedRate = &rate
		state.SavedRateSource = saved.Source
		state.LastUpdated = &lastUpdated
		if !useLive && saved.Source == domain.RateSourceManual {
			manual := saved.Rate
			state.ManualRate = &manual
		}
	}
	return state, nil
}

func (s *rateConfigService) fillLiveRate(ctx context.Context, state *domain.RateConfigState) {
	rate, err := s.liveRate(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Error fetching live rate")
		state.FetchError = domain.LiveRateFetchError
		return
	}
	state.LiveRate = &rate
}

// liveRate serves a fresh cache entry, otherwise makes a single provider call.
// Concurrent callers share one in-flight request.
func (s *rateConfigService) liveRate(ctx context.Context) (decimal.Decimal, error) {
	now := s.now()
	cached, err := s.store.FindLiveRateCache(ctx)
	switch {
	case err == nil && cached.IsFresh(now, s.cacheTTL):
		s.LogDebug(ctx, "Using cached live rate", slog.Time("cached_at", cached.Timestamp))
		return cached.Rate, nil
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogWarn(ctx, err, "Failed to read live rate cache")
	}

	// The shared fetch ignores any one caller's cancellation.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.fetches.DoChan("live", func() (any, error) {
		s.fetching.Add(1)
		defer s.fetching.Add(-1)

		rate, err := s.source.FetchRate(fetchCtx)
		if err != nil {
			return nil, err
		}
		entry := domain.LiveRateCacheEntry{Rate: rate, Timestamp: s.now()}
		if err := s.store.SaveLiveRateCache(fetchCtx, entry); err != nil {
			s.LogWarn(fetchCtx, err, "Failed to cache live rate")
		}
		return rate, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return decimal.Zero, ctx.Err()
	}
	if res.Err != nil {
		return decimal.Zero, res.Err
	}
	return res.Val.(decimal.Decimal), nil
}
