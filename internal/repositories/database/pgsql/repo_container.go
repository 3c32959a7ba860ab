package pgsql

import (
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds a provider whose rate settings live in PostgreSQL.
// Reference data, journal entries and reports always come from the accounting API.
func NewRepositoryProvider(
	dbPool *pgxpool.Pool,
	accounting portsrepo.AccountingRepositoryFacade,
	liveRates portsrepo.LiveRateSource,
) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: NewPgxExchangeRateRepository(dbPool),
		LiveRateSource:   liveRates,
		AccountingRepo:   accounting,
	}
}
