package services

// ServiceContainer aggregates all service implementations for wiring
type ServiceContainer struct {
	RateResolver RateResolverSvc
	TradeLimiter TradeLimiterSvc
	Trade        TradeSvcFacade
}
