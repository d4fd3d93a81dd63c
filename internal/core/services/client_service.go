package services

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/guibecker772/advisor-control/internal/apperrors"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/dto"
	"github.com/guibecker772/advisor-control/internal/events"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, options ...Option) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: newBaseService(options...),
		clientRepo:  clientRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) GetClientByID(ctx context.Context, ownerID, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, ownerID, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, ownerID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients", slog.String("owner_id", ownerID))
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func applyClientRequest(client *domain.Client, req dto.ClientRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return apperrors.NewAppError(http.StatusBadRequest, "name is required", apperrors.ErrValidation)
	}
	client.Name = name
	client.Email = strings.TrimSpace(req.Email)
	client.Phone = strings.TrimSpace(req.Phone)
	client.Origin = strings.TrimSpace(req.Origin)
	client.Status = domain.ClientStatus(req.Status)
	if client.Status == "" {
		client.Status = domain.ClientActive
	}
	client.Custody = req.Custody
	if client.Custody.IsNegative() {
		return apperrors.NewAppError(http.StatusBadRequest, "custody must not be negative", apperrors.ErrValidation)
	}
	client.Notes = strings.TrimSpace(req.Notes)
	return nil
}

func (s *clientService) CreateClient(ctx context.Context, ownerID string, req dto.ClientRequest) (*domain.Client, error) {
	client := domain.Client{
		ClientID:    uuid.NewString(),
		OwnerID:     ownerID,
		AuditFields: domain.NewAuditFields(ownerID, s.Now()),
	}
	if err := applyClientRequest(&client, req); err != nil {
		return nil, err
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created successfully", slog.String("client_id", client.ClientID))
	s.Invalidate(ctx, ownerID, []string{client.ClientID}, events.ScopeClients)
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, ownerID, clientID string, req dto.ClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, ownerID, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find client for update", slog.String("client_id", clientID))
		return nil, err
	}
	if err := applyClientRequest(client, req); err != nil {
		return nil, err
	}
	client.Touch(ownerID, s.Now())

	version := expectedVersion(req.Version, client.Version)
	if err := s.clientRepo.UpdateClient(ctx, *client, version); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	client.Version = version + 1

	s.LogInfo(ctx, "Client updated successfully", slog.String("client_id", clientID))
	s.Invalidate(ctx, ownerID, []string{clientID}, events.ScopeClients)
	return client, nil
}

// DeleteClient removes the client. Ledger entries keep their client name snapshot.
func (s *clientService) DeleteClient(ctx context.Context, ownerID, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, ownerID, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return err
	}
	s.LogInfo(ctx, "Client deleted successfully", slog.String("client_id", clientID))
	s.Invalidate(ctx, ownerID, []string{clientID}, events.ScopeClients)
	return nil
}
