package handlers_test

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/dto"
	"github.com/guibecker772/advisor-control/internal/utils/offers"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClientByID(ctx context.Context, ownerID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, ownerID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, ownerID string) ([]domain.Client, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) CreateClient(ctx context.Context, ownerID string, req dto.ClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, ownerID, clientID string, req dto.ClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, ownerID, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(ctx context.Context, ownerID, clientID string) error {
	args := m.Called(ctx, ownerID, clientID)
	return args.Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock ProspectService ---
type MockProspectService struct {
	mock.Mock
}

func (m *MockProspectService) GetProspectByID(ctx context.Context, ownerID, prospectID string) (*domain.Prospect, error) {
	args := m.Called(ctx, ownerID, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prospect), args.Error(1)
}
func (m *MockProspectService) ListProspects(ctx context.Context, ownerID string) ([]domain.Prospect, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prospect), args.Error(1)
}
func (m *MockProspectService) SaveProspect(ctx context.Context, ownerID, prospectID string, req dto.ProspectRequest) (*domain.Prospect, domain.ConversionTransition, error) {
	args := m.Called(ctx, ownerID, prospectID, req)
	if args.Get(0) == nil {
		return nil, domain.TransitionNone, args.Error(2)
	}
	return args.Get(0).(*domain.Prospect), args.Get(1).(domain.ConversionTransition), args.Error(2)
}
func (m *MockProspectService) DeleteProspect(ctx context.Context, ownerID, prospectID string) error {
	args := m.Called(ctx, ownerID, prospectID)
	return args.Error(0)
}

var _ portssvc.ProspectSvcFacade = (*MockProspectService)(nil)

// --- Mock CaptacaoService ---
type MockCaptacaoService struct {
	mock.Mock
}

func (m *MockCaptacaoService) GetLancamentoByID(ctx context.Context, ownerID, lancamentoID string) (*domain.CaptacaoLancamento, error) {
	args := m.Called(ctx, ownerID, lancamentoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaptacaoLancamento), args.Error(1)
}
func (m *MockCaptacaoService) ListLancamentos(ctx context.Context, ownerID string, params dto.ListLancamentosParams) (*dto.ListLancamentosResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLancamentosResponse), args.Error(1)
}
func (m *MockCaptacaoService) GetMonthlySummary(ctx context.Context, ownerID string, year, month int) (domain.CaptacaoSummary, error) {
	args := m.Called(ctx, ownerID, year, month)
	return args.Get(0).(domain.CaptacaoSummary), args.Error(1)
}
func (m *MockCaptacaoService) CreateLancamento(ctx context.Context, ownerID string, req dto.LancamentoRequest) (*domain.CaptacaoLancamento, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaptacaoLancamento), args.Error(1)
}
func (m *MockCaptacaoService) UpdateLancamento(ctx context.Context, ownerID, lancamentoID string, req dto.LancamentoRequest) (*domain.CaptacaoLancamento, error) {
	args := m.Called(ctx, ownerID, lancamentoID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaptacaoLancamento), args.Error(1)
}
func (m *MockCaptacaoService) DeleteLancamento(ctx context.Context, ownerID, lancamentoID string) error {
	args := m.Called(ctx, ownerID, lancamentoID)
	return args.Error(0)
}
func (m *MockCaptacaoService) ExportXLSX(ctx context.Context, callerID, ownerID, fromMonth, toMonth string) ([]byte, error) {
	args := m.Called(ctx, callerID, ownerID, fromMonth, toMonth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockCaptacaoService) ImportLancamentos(ctx context.Context, callerID, ownerID string) error {
	args := m.Called(ctx, callerID, ownerID)
	return args.Error(0)
}

var _ portssvc.CaptacaoSvcFacade = (*MockCaptacaoService)(nil)

// --- Mock OfferService ---
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) GetOfferByID(ctx context.Context, ownerID, offerID string) (*domain.Offer, error) {
	args := m.Called(ctx, ownerID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockOfferService) ListOffers(ctx context.Context, ownerID string, filter domain.OfferFilter) ([]domain.Offer, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}
func (m *MockOfferService) GetOfferTotals(ctx context.Context, ownerID, offerID string) (domain.OfferTotals, error) {
	args := m.Called(ctx, ownerID, offerID)
	return args.Get(0).(domain.OfferTotals), args.Error(1)
}
func (m *MockOfferService) CreateOffer(ctx context.Context, ownerID string, req dto.OfferRequest) (*domain.Offer, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockOfferService) UpdateOffer(ctx context.Context, ownerID, offerID string, req dto.OfferRequest) (*domain.Offer, error) {
	args := m.Called(ctx, ownerID, offerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockOfferService) DeleteOffer(ctx context.Context, ownerID, offerID string) error {
	args := m.Called(ctx, ownerID, offerID)
	return args.Error(0)
}
func (m *MockOfferService) AddReservationToOffer(ctx context.Context, ownerID, offerID string, input offers.ReservationInput) (offers.ReservationResult, error) {
	args := m.Called(ctx, ownerID, offerID, input)
	return args.Get(0).(offers.ReservationResult), args.Error(1)
}

var _ portssvc.OfferSvcFacade = (*MockOfferService)(nil)
