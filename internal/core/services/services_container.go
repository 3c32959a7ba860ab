package services

import (
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Journal entries read the current rate, so the rate service comes first
	container.ExchangeRate = NewRateConfigService(
		repos.ExchangeRateRepo,
		repos.LiveRateSource,
		WithRateLocation(cfg.Location),
		WithLiveRateCacheTTL(cfg.LiveRateCacheTTL),
		WithDefaultUseLiveRates(cfg.UseLiveRates),
	)

	container.JournalEntry = NewJournalEntryService(
		repos.AccountingRepo,
		container.ExchangeRate,
		WithCurrencies(cfg.BaseCurrency, cfg.LocalCurrency),
		WithJournalLocation(cfg.Location),
	)

	container.Reporting = NewReportingService(
		repos.AccountingRepo,
		WithReportLogo(cfg.ReportLogoPath),
		WithReportCurrencies(cfg.BaseCurrency, cfg.LocalCurrency),
		WithReportLocation(cfg.Location),
	)

	return container
}
