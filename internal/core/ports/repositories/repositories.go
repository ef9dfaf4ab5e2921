package repositories

// RepositoryProvider aggregates all repository implementations for wiring
type RepositoryProvider struct {
	RateRepo  RateRepositoryFacade
	TradeRepo TradeRepositoryFacade
}
