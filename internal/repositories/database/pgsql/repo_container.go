package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/nmishr/currency_exchange/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:  NewPgxRateRepository(dbPool),
		TradeRepo: NewPgxTradeRepository(dbPool),
	}
}

// Compile-time interface checks
var (
	_ portsrepo.RateRepositoryFacade  = (*PgxRateRepository)(nil)
	_ portsrepo.TradeRepositoryFacade = (*PgxTradeRepository)(nil)
)
