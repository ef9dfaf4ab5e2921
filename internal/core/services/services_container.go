package services

import (
	portsprov "github.com/nmishr/currency_exchange/internal/core/ports/providers"
	portsrepo "github.com/nmishr/currency_exchange/internal/core/ports/repositories"
	portssvc "github.com/nmishr/currency_exchange/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cache portsrepo.Cache, repos portsrepo.RepositoryProvider, provider portsprov.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.RateResolver = NewRateResolverService(cache, repos.RateRepo, provider)
	container.TradeLimiter = NewTradeLimiterService(cache)
	container.Trade = NewTradeService(repos.TradeRepo, container.TradeLimiter, container.RateResolver)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.RateResolverSvc = (*rateResolverService)(nil)
	_ portssvc.TradeLimiterSvc = (*tradeLimiterService)(nil)
	_ portssvc.TradeSvcFacade  = (*tradeService)(nil)
)
