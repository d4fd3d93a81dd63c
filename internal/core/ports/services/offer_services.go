package services

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/dto"
	"github.com/guibecker772/advisor-control/internal/utils/offers"
)

// OfferReaderSvc defines read operations for offers
type OfferReaderSvc interface {
	GetOfferByID(ctx context.Context, ownerID, offerID string) (*domain.Offer, error)

	// ListOffers filters through the owner's lookup index.
	ListOffers(ctx context.Context, ownerID string, filter domain.OfferFilter) ([]domain.Offer, error)

	GetOfferTotals(ctx context.Context, ownerID, offerID string) (domain.OfferTotals, error)
}

// OfferWriterSvc defines write operations for offers
type OfferWriterSvc interface {
	CreateOffer(ctx context.Context, ownerID string, req dto.OfferRequest) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, ownerID, offerID string, req dto.OfferRequest) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, ownerID, offerID string) error
}

// OfferReservationSvc applies client allocations to persisted offers.
type OfferReservationSvc interface {
	// AddReservationToOffer returns a refused result, not an error, for domain-state failures.
	AddReservationToOffer(ctx context.Context, ownerID, offerID string, input offers.ReservationInput) (offers.ReservationResult, error)
}

// OfferSvcFacade combines all offer-related service interfaces
type OfferSvcFacade interface {
	OfferReaderSvc
	OfferWriterSvc
	OfferReservationSvc
}
