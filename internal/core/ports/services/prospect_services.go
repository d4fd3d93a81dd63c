package services

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/dto"
)

// ProspectReaderSvc defines read operations for prospect data
type ProspectReaderSvc interface {
	GetProspectByID(ctx context.Context, ownerID, prospectID string) (*domain.Prospect, error)
	ListProspects(ctx context.Context, ownerID string) ([]domain.Prospect, error)
}

// ProspectConversionSvc saves prospects and keeps their client and ledger entries in step.
type ProspectConversionSvc interface {
	// SaveProspect creates the prospect when prospectID is empty, updates it otherwise,
	// converting or reverting it when the won status changes. The returned
	// transition says which of those happened.
	SaveProspect(ctx context.Context, ownerID, prospectID string, req dto.ProspectRequest) (*domain.Prospect, domain.ConversionTransition, error)

	// DeleteProspect removes the prospect, reversing its conversion entry when converted.
	DeleteProspect(ctx context.Context, ownerID, prospectID string) error
}

// ProspectSvcFacade combines all prospect-related service interfaces
type ProspectSvcFacade interface {
	ProspectReaderSvc
	ProspectConversionSvc
}
