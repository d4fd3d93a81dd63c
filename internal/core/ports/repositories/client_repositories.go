package repositories

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client of ownerID.
	FindClientByID(ctx context.Context, ownerID, clientID string) (*domain.Client, error)

	// FindClientOwner returns the owner of clientID regardless of the caller.
	FindClientOwner(ctx context.Context, clientID string) (string, error)

	// ListClients retrieves every client of ownerID ordered by name.
	ListClients(ctx context.Context, ownerID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient stores client if its stored version still equals expectedVersion.
	UpdateClient(ctx context.Context, client domain.Client, expectedVersion int64) error

	// DeleteClient removes a client of ownerID.
	DeleteClient(ctx context.Context, ownerID, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
