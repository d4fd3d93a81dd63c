package services

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, ownerID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, ownerID string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, ownerID string, req dto.ClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, ownerID, clientID string, req dto.ClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, ownerID, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
