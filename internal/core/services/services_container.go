package services

import (
	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/guibecker772/advisor-control/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Every service publishes its writes on bus; the offer service also listens to it
// to drop stale offer indexes.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, bus *events.Bus) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo, WithEvents(bus))
	container.Prospect = NewProspectService(
		repos.ProspectRepo,
		repos.ClientRepo,
		repos.CaptacaoRepo,
		repos.UnitOfWork,
		WithEvents(bus),
	)
	container.Captacao = NewCaptacaoService(repos.CaptacaoRepo, repos.ClientRepo, WithEvents(bus))
	container.Offer = NewOfferService(
		repos.OfferRepo,
		repos.ClientRepo,
		WithBaseOptions(WithEvents(bus)),
		WithOfferIndexTTL(cfg.OfferIndexTTL),
		WithInvalidationSource(bus),
	)

	return container
}
