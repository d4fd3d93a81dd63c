package repositories

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
)

// ProspectReader defines read operations for prospect data
type ProspectReader interface {
	FindProspectByID(ctx context.Context, ownerID, prospectID string) (*domain.Prospect, error)
	ListProspects(ctx context.Context, ownerID string) ([]domain.Prospect, error)
}

// ProspectWriter defines write operations for prospect data
type ProspectWriter interface {
	SaveProspect(ctx context.Context, prospect domain.Prospect) error
	UpdateProspect(ctx context.Context, prospect domain.Prospect, expectedVersion int64) error
	DeleteProspect(ctx context.Context, ownerID, prospectID string) error
}

// ProspectRepositoryFacade combines all prospect-related repository interfaces
type ProspectRepositoryFacade interface {
	ProspectReader
	ProspectWriter
}
