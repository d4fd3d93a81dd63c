package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo   ClientRepositoryFacade
	ProspectRepo ProspectRepositoryFacade
	CaptacaoRepo CaptacaoRepositoryFacade
	OfferRepo    OfferRepositoryFacade
	UnitOfWork   UnitOfWork
}
