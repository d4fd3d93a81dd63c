package services_test

import (
	"context"
	"sync"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, ownerID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, ownerID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientOwner(ctx context.Context, clientID string) (string, error) {
	args := m.Called(ctx, clientID)
	return args.String(0), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, ownerID string) ([]domain.Client, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client, expectedVersion int64) error {
	args := m.Called(ctx, client, expectedVersion)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, ownerID, clientID string) error {
	args := m.Called(ctx, ownerID, clientID)
	return args.Error(0)
}

// --- Mock ProspectRepository ---
type MockProspectRepository struct {
	mock.Mock
}

var _ portsrepo.ProspectRepositoryFacade = (*MockProspectRepository)(nil)

func (m *MockProspectRepository) FindProspectByID(ctx context.Context, ownerID, prospectID string) (*domain.Prospect, error) {
	args := m.Called(ctx, ownerID, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prospect), args.Error(1)
}

func (m *MockProspectRepository) ListProspects(ctx context.Context, ownerID string) ([]domain.Prospect, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prospect), args.Error(1)
}

func (m *MockProspectRepository) SaveProspect(ctx context.Context, prospect domain.Prospect) error {
	args := m.Called(ctx, prospect)
	return args.Error(0)
}

func (m *MockProspectRepository) UpdateProspect(ctx context.Context, prospect domain.Prospect, expectedVersion int64) error {
	args := m.Called(ctx, prospect, expectedVersion)
	return args.Error(0)
}

func (m *MockProspectRepository) DeleteProspect(ctx context.Context, ownerID, prospectID string) error {
	args := m.Called(ctx, ownerID, prospectID)
	return args.Error(0)
}

// --- Mock CaptacaoRepository ---
type MockCaptacaoRepository struct {
	mock.Mock
}

var _ portsrepo.CaptacaoRepositoryFacade = (*MockCaptacaoRepository)(nil)

func (m *MockCaptacaoRepository) FindLancamentoByID(ctx context.Context, ownerID, lancamentoID string) (*domain.CaptacaoLancamento, error) {
	args := m.Called(ctx, ownerID, lancamentoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaptacaoLancamento), args.Error(1)
}

func (m *MockCaptacaoRepository) FindLancamentoBySourceRef(ctx context.Context, ownerID, sourceRef string) (*domain.CaptacaoLancamento, error) {
	args := m.Called(ctx, ownerID, sourceRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaptacaoLancamento), args.Error(1)
}

func (m *MockCaptacaoRepository) ListLancamentos(ctx context.Context, ownerID string, filter domain.LancamentoFilter, limit int, nextToken *string) ([]domain.CaptacaoLancamento, *string, error) {
	args := m.Called(ctx, ownerID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.CaptacaoLancamento), returnedNextToken, args.Error(2)
}

func (m *MockCaptacaoRepository) ListLancamentosBetween(ctx context.Context, ownerID, from, to string) ([]domain.CaptacaoLancamento, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaptacaoLancamento), args.Error(1)
}

func (m *MockCaptacaoRepository) SaveLancamento(ctx context.Context, lancamento domain.CaptacaoLancamento) error {
	args := m.Called(ctx, lancamento)
	return args.Error(0)
}

func (m *MockCaptacaoRepository) UpdateLancamento(ctx context.Context, lancamento domain.CaptacaoLancamento, expectedVersion int64) error {
	args := m.Called(ctx, lancamento, expectedVersion)
	return args.Error(0)
}

func (m *MockCaptacaoRepository) DeleteLancamento(ctx context.Context, ownerID, lancamentoID string) error {
	args := m.Called(ctx, ownerID, lancamentoID)
	return args.Error(0)
}

func (m *MockCaptacaoRepository) UpsertLancamentoBySourceRef(ctx context.Context, lancamento domain.CaptacaoLancamento) (*domain.CaptacaoLancamento, error) {
	args := m.Called(ctx, lancamento)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaptacaoLancamento), args.Error(1)
}

func (m *MockCaptacaoRepository) DeleteLancamentoBySourceRef(ctx context.Context, ownerID, sourceRef string) error {
	args := m.Called(ctx, ownerID, sourceRef)
	return args.Error(0)
}

// --- Mock OfferRepository ---
type MockOfferRepository struct {
	mock.Mock
}

var _ portsrepo.OfferRepositoryFacade = (*MockOfferRepository)(nil)

func (m *MockOfferRepository) FindOfferByID(ctx context.Context, ownerID, offerID string) (*domain.Offer, error) {
	args := m.Called(ctx, ownerID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListOffers(ctx context.Context, ownerID string) ([]domain.Offer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) UpdateOffer(ctx context.Context, offer domain.Offer, expectedVersion int64) error {
	args := m.Called(ctx, offer, expectedVersion)
	return args.Error(0)
}

func (m *MockOfferRepository) DeleteOffer(ctx context.Context, ownerID, offerID string) error {
	args := m.Called(ctx, ownerID, offerID)
	return args.Error(0)
}

// --- Fake UnitOfWork ---

// fakeUnitOfWork runs fn directly and records how each run ended.
type fakeUnitOfWork struct {
	runs   int
	failed int
}

var _ portsrepo.UnitOfWork = (*fakeUnitOfWork)(nil)

func (u *fakeUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	u.runs++
	err := fn(ctx)
	if err != nil {
		u.failed++
	}
	return err
}

// --- Recording publisher ---
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Invalidation
}

var _ events.Publisher = (*recordingPublisher)(nil)

func (p *recordingPublisher) Publish(ev events.Invalidation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) published() []events.Invalidation {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Invalidation, len(p.events))
	copy(out, p.events)
	return out
}
