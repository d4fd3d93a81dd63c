package repositories

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
)

// OfferReader defines read operations for offer reservations
type OfferReader interface {
	FindOfferByID(ctx context.Context, ownerID, offerID string) (*domain.Offer, error)

	// ListOffers retrieves every offer of ownerID, newest competence month first.
	ListOffers(ctx context.Context, ownerID string) ([]domain.Offer, error)
}

// OfferWriter defines write operations for offer reservations
type OfferWriter interface {
	SaveOffer(ctx context.Context, offer domain.Offer) error
	UpdateOffer(ctx context.Context, offer domain.Offer, expectedVersion int64) error
	DeleteOffer(ctx context.Context, ownerID, offerID string) error
}

// OfferRepositoryFacade combines all offer-related repository interfaces
type OfferRepositoryFacade interface {
	OfferReader
	OfferWriter
}
