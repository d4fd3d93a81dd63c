package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guibecker772/advisor-control/internal/apperrors"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/core/services"
	"github.com/guibecker772/advisor-control/internal/dto"
	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProspectServiceTestSuite struct {
	suite.Suite
	prospectRepo *MockProspectRepository
	clientRepo   *MockClientRepository
	captacaoRepo *MockCaptacaoRepository
	uow          *fakeUnitOfWork
	publisher    *recordingPublisher
	service      portssvc.ProspectSvcFacade
	ownerID      string
	now          time.Time
}

func (suite *ProspectServiceTestSuite) SetupTest() {
	suite.prospectRepo = new(MockProspectRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.captacaoRepo = new(MockCaptacaoRepository)
	suite.uow = &fakeUnitOfWork{}
	suite.publisher = &recordingPublisher{}
	suite.ownerID = uuid.NewString()
	suite.now = time.Date(2026, 2, 3, 15, 4, 5, 0, time.UTC)
	suite.service = services.NewProspectService(
		suite.prospectRepo, suite.clientRepo, suite.captacaoRepo, suite.uow,
		services.WithEvents(suite.publisher),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *ProspectServiceTestSuite) assertMocks() {
	suite.prospectRepo.AssertExpectations(suite.T())
	suite.clientRepo.AssertExpectations(suite.T())
	suite.captacaoRepo.AssertExpectations(suite.T())
}

func wonRequest(value string, realizedType string) dto.ProspectRequest {
	return dto.ProspectRequest{
		Name:          "Carla Mendes",
		Email:         "carla@example.com",
		Status:        "Ganho",
		RealizedValue: decimal.RequireFromString(value),
		RealizedType:  realizedType,
		RealizedDate:  "2026-01-10",
	}
}

func (suite *ProspectServiceTestSuite) convertedProspect(id, clientID string) *domain.Prospect {
	return &domain.Prospect{
		ProspectID:        id,
		OwnerID:           suite.ownerID,
		Name:              "Carla Mendes",
		Status:            "ganho",
		RealizedValue:     decimal.NewFromInt(100),
		RealizedDate:      "2026-01-10",
		Converted:         true,
		ConvertedClientID: clientID,
		AuditFields:       domain.AuditFields{Version: 2},
	}
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_WonWithoutRealizedValueIsRejected() {
	req := wonRequest("0", "")
	req.RealizedDate = ""

	prospect, transition, err := suite.service.SaveProspect(context.Background(), suite.ownerID, "", req)

	suite.Require().Error(err)
	suite.Nil(prospect)
	suite.Equal(domain.TransitionNone, transition)
	suite.ErrorIs(err, apperrors.ErrConversionRequirements)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Len(appErr.Details, 2)
	suite.Zero(suite.uow.runs, "nothing may be read or written")
	suite.Empty(suite.publisher.published())
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_CreateWonConvertsIntoClientAndEntry() {
	ctx := context.Background()
	var newClientID string

	suite.clientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		newClientID = c.ClientID
		return c.Name == "Carla Mendes" && c.OwnerID == suite.ownerID && c.Status == domain.ClientActive && c.SourceProspectID != ""
	})).Return(nil).Once()
	suite.captacaoRepo.On("UpsertLancamentoBySourceRef", ctx, mock.MatchedBy(func(l domain.CaptacaoLancamento) bool {
		return strings.HasPrefix(l.SourceRef, domain.SourceRefProspectConversion+":") &&
			l.Value.Equal(decimal.NewFromInt(100)) &&
			l.Direction == domain.DirectionIn &&
			l.Type == domain.LancamentoCaptacaoLiquida &&
			l.Date == "2026-01-10" && l.Month == 1 && l.Year == 2026 &&
			l.ClientID == newClientID
	})).Return(&domain.CaptacaoLancamento{}, nil).Once()
	suite.captacaoRepo.On("DeleteLancamentoBySourceRef", ctx, suite.ownerID, mock.MatchedBy(func(ref string) bool {
		return strings.HasPrefix(ref, domain.SourceRefProspectReversal+":")
	})).Return(nil).Once()
	suite.prospectRepo.On("SaveProspect", ctx, mock.MatchedBy(func(p domain.Prospect) bool {
		return p.Converted && p.ConvertedClientID == newClientID && p.Version == 1
	})).Return(nil).Once()

	prospect, transition, err := suite.service.SaveProspect(ctx, suite.ownerID, "", wonRequest("100", ""))

	suite.Require().NoError(err)
	suite.Equal(domain.TransitionConverted, transition)
	suite.True(prospect.Converted)
	suite.Equal(newClientID, prospect.ConvertedClientID)
	suite.Equal(1, suite.uow.runs)

	published := suite.publisher.published()
	suite.Require().Len(published, 1)
	suite.True(published[0].HasScope(events.ScopeProspects))
	suite.True(published[0].HasScope(events.ScopeClients))
	suite.True(published[0].HasScope(events.ScopeCaptacao))
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_WonEditUpdatesConversionEntryInPlace() {
	ctx := context.Background()
	prospectID, clientID := uuid.NewString(), uuid.NewString()
	conversionRef := domain.ProspectConversionRef(prospectID)
	existingEntry := &domain.CaptacaoLancamento{LancamentoID: "entry-1", ClientID: clientID, ClientName: "Carla M.", SourceRef: conversionRef}

	suite.prospectRepo.On("FindProspectByID", ctx, suite.ownerID, prospectID).Return(suite.convertedProspect(prospectID, clientID), nil).Once()
	suite.captacaoRepo.On("FindLancamentoBySourceRef", ctx, suite.ownerID, conversionRef).Return(existingEntry, nil).Once()
	suite.captacaoRepo.On("UpsertLancamentoBySourceRef", ctx, mock.MatchedBy(func(l domain.CaptacaoLancamento) bool {
		return l.SourceRef == conversionRef &&
			l.Value.Equal(decimal.NewFromInt(250)) &&
			l.Type == domain.LancamentoTransferenciaXP &&
			l.Month == 1 && l.ClientID == clientID && l.ClientName == "Carla M."
	})).Return(existingEntry, nil).Once()
	suite.prospectRepo.On("UpdateProspect", ctx, mock.MatchedBy(func(p domain.Prospect) bool {
		return p.Converted && p.ConvertedClientID == clientID && p.RealizedValue.Equal(decimal.NewFromInt(250))
	}), int64(2)).Return(nil).Once()

	prospect, transition, err := suite.service.SaveProspect(ctx, suite.ownerID, prospectID, wonRequest("250", "transferencia_xp"))

	suite.Require().NoError(err)
	suite.Equal(domain.TransitionUpdated, transition)
	suite.Equal(int64(3), prospect.Version)
	suite.clientRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
	suite.captacaoRepo.AssertNotCalled(suite.T(), "DeleteLancamentoBySourceRef", mock.Anything, mock.Anything, mock.Anything)
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_LeavingWonWritesReversalAndKeepsClient() {
	ctx := context.Background()
	prospectID, clientID := uuid.NewString(), uuid.NewString()
	original := &domain.CaptacaoLancamento{
		ClientID: clientID, ClientName: "Carla Mendes", Direction: domain.DirectionIn,
		Type: domain.LancamentoTransferenciaXP, Value: decimal.NewFromInt(250),
		SourceRef: domain.ProspectConversionRef(prospectID),
	}

	suite.prospectRepo.On("FindProspectByID", ctx, suite.ownerID, prospectID).Return(suite.convertedProspect(prospectID, clientID), nil).Once()
	suite.captacaoRepo.On("FindLancamentoBySourceRef", ctx, suite.ownerID, domain.ProspectConversionRef(prospectID)).Return(original, nil).Once()
	suite.captacaoRepo.On("UpsertLancamentoBySourceRef", ctx, mock.MatchedBy(func(l domain.CaptacaoLancamento) bool {
		return l.SourceRef == domain.ProspectReversalRef(prospectID) &&
			l.Direction == domain.DirectionOut &&
			l.Value.Equal(decimal.NewFromInt(250)) &&
			l.Type == domain.LancamentoTransferenciaXP &&
			l.Date == "2026-02-03" && l.Month == 2 && l.Year == 2026 &&
			l.ClientID == clientID
	})).Return(&domain.CaptacaoLancamento{}, nil).Once()
	suite.prospectRepo.On("UpdateProspect", ctx, mock.MatchedBy(func(p domain.Prospect) bool {
		return !p.Converted && p.ConvertedClientID == clientID && p.Status == "perdido"
	}), int64(2)).Return(nil).Once()

	req := dto.ProspectRequest{Name: "Carla Mendes", Status: "perdido"}
	prospect, transition, err := suite.service.SaveProspect(ctx, suite.ownerID, prospectID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TransitionReverted, transition)
	suite.False(prospect.Converted)
	suite.clientRepo.AssertNotCalled(suite.T(), "DeleteClient", mock.Anything, mock.Anything, mock.Anything)
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_ReconvertingReusesClientAndDropsReversal() {
	ctx := context.Background()
	prospectID, clientID := uuid.NewString(), uuid.NewString()
	reverted := suite.convertedProspect(prospectID, clientID)
	reverted.Converted = false
	reverted.Status = "perdido"
	client := &domain.Client{ClientID: clientID, OwnerID: suite.ownerID, Name: "Carla Mendes", Status: domain.ClientInactive,
		AuditFields: domain.AuditFields{Version: 7}}

	suite.prospectRepo.On("FindProspectByID", ctx, suite.ownerID, prospectID).Return(reverted, nil).Once()
	suite.clientRepo.On("FindClientOwner", ctx, clientID).Return(suite.ownerID, nil).Once()
	suite.clientRepo.On("FindClientByID", ctx, suite.ownerID, clientID).Return(client, nil).Once()
	suite.clientRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Status == domain.ClientActive && c.Email == "carla@example.com"
	}), int64(7)).Return(nil).Once()
	suite.captacaoRepo.On("UpsertLancamentoBySourceRef", ctx, mock.MatchedBy(func(l domain.CaptacaoLancamento) bool {
		return l.SourceRef == domain.ProspectConversionRef(prospectID) && l.ClientID == clientID
	})).Return(&domain.CaptacaoLancamento{}, nil).Once()
	suite.captacaoRepo.On("DeleteLancamentoBySourceRef", ctx, suite.ownerID, domain.ProspectReversalRef(prospectID)).Return(nil).Once()
	suite.prospectRepo.On("UpdateProspect", ctx, mock.MatchedBy(func(p domain.Prospect) bool {
		return p.Converted && p.ConvertedClientID == clientID
	}), int64(2)).Return(nil).Once()

	_, transition, err := suite.service.SaveProspect(ctx, suite.ownerID, prospectID, wonRequest("100", ""))

	suite.Require().NoError(err)
	suite.Equal(domain.TransitionConverted, transition)
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_LinkingAnotherOwnersClientIsForbidden() {
	ctx := context.Background()
	req := wonRequest("100", "")
	req.ClientID = "foreign-client"

	suite.clientRepo.On("FindClientOwner", ctx, "foreign-client").Return("someone-else", nil).Once()

	prospect, _, err := suite.service.SaveProspect(ctx, suite.ownerID, "", req)

	suite.Require().Error(err)
	suite.Nil(prospect)
	suite.ErrorIs(err, apperrors.ErrLinkForbidden)
	suite.Equal(1, suite.uow.failed)
	suite.prospectRepo.AssertNotCalled(suite.T(), "SaveProspect", mock.Anything, mock.Anything)
	suite.captacaoRepo.AssertNotCalled(suite.T(), "UpsertLancamentoBySourceRef", mock.Anything, mock.Anything)
	suite.Empty(suite.publisher.published())
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_PlainUpdate() {
	ctx := context.Background()
	prospectID := uuid.NewString()
	existing := &domain.Prospect{ProspectID: prospectID, OwnerID: suite.ownerID, Name: "Davi", Status: "novo",
		AuditFields: domain.AuditFields{Version: 1}}
	version := int64(1)

	suite.prospectRepo.On("FindProspectByID", ctx, suite.ownerID, prospectID).Return(existing, nil).Once()
	suite.prospectRepo.On("UpdateProspect", ctx, mock.MatchedBy(func(p domain.Prospect) bool {
		return p.Status == "proposta" && p.Probability == 60 && p.NextContactDate == "2026-03-01"
	}), version).Return(nil).Once()

	req := dto.ProspectRequest{Name: "Davi", Status: "proposta", Probability: 60, NextContactDate: "01/03/2026", Version: &version}
	prospect, transition, err := suite.service.SaveProspect(ctx, suite.ownerID, prospectID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TransitionNone, transition)
	suite.Equal(int64(2), prospect.Version)
	suite.Require().Len(suite.publisher.published(), 1)
	suite.Equal([]string{events.ScopeProspects}, suite.publisher.published()[0].Scopes)
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_LedgerFailureAbortsTransaction() {
	ctx := context.Background()
	suite.clientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.captacaoRepo.On("UpsertLancamentoBySourceRef", ctx, mock.AnythingOfType("domain.CaptacaoLancamento")).Return(nil, assert.AnError).Once()

	prospect, _, err := suite.service.SaveProspect(ctx, suite.ownerID, "", wonRequest("100", ""))

	suite.Require().Error(err)
	suite.Nil(prospect)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(1, suite.uow.failed)
	suite.prospectRepo.AssertNotCalled(suite.T(), "SaveProspect", mock.Anything, mock.Anything)
	suite.Empty(suite.publisher.published())
}

func (suite *ProspectServiceTestSuite) TestSaveProspect_OutflowRealizedTypeBooksSaida() {
	ctx := context.Background()
	suite.clientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()
	suite.captacaoRepo.On("UpsertLancamentoBySourceRef", ctx, mock.MatchedBy(func(l domain.CaptacaoLancamento) bool {
		return l.Direction == domain.DirectionOut && l.Type == domain.LancamentoResgate && l.Value.Equal(decimal.NewFromInt(80))
	})).Return(&domain.CaptacaoLancamento{}, nil).Once()
	suite.captacaoRepo.On("DeleteLancamentoBySourceRef", ctx, suite.ownerID, mock.AnythingOfType("string")).Return(nil).Once()
	suite.prospectRepo.On("SaveProspect", ctx, mock.AnythingOfType("domain.Prospect")).Return(nil).Once()

	_, _, err := suite.service.SaveProspect(ctx, suite.ownerID, "", wonRequest("80", "Resgate"))

	suite.Require().NoError(err)
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestDeleteProspect_ConvertedWritesReversal() {
	ctx := context.Background()
	prospectID, clientID := uuid.NewString(), uuid.NewString()

	suite.prospectRepo.On("FindProspectByID", ctx, suite.ownerID, prospectID).Return(suite.convertedProspect(prospectID, clientID), nil).Once()
	suite.captacaoRepo.On("FindLancamentoBySourceRef", ctx, suite.ownerID, domain.ProspectConversionRef(prospectID)).Return(nil, apperrors.ErrNotFound).Once()
	suite.captacaoRepo.On("UpsertLancamentoBySourceRef", ctx, mock.MatchedBy(func(l domain.CaptacaoLancamento) bool {
		return l.SourceRef == domain.ProspectReversalRef(prospectID) &&
			l.Direction == domain.DirectionOut && l.Value.Equal(decimal.NewFromInt(100))
	})).Return(&domain.CaptacaoLancamento{}, nil).Once()
	suite.prospectRepo.On("DeleteProspect", ctx, suite.ownerID, prospectID).Return(nil).Once()

	err := suite.service.DeleteProspect(ctx, suite.ownerID, prospectID)

	suite.Require().NoError(err)
	suite.Require().Len(suite.publisher.published(), 1)
	suite.True(suite.publisher.published()[0].HasScope(events.ScopeCaptacao))
	suite.assertMocks()
}

func (suite *ProspectServiceTestSuite) TestDeleteProspect_NotFound() {
	ctx := context.Background()
	suite.prospectRepo.On("FindProspectByID", ctx, suite.ownerID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProspect(ctx, suite.ownerID, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.prospectRepo.AssertNotCalled(suite.T(), "DeleteProspect", mock.Anything, mock.Anything, mock.Anything)
}

func TestProspectService(t *testing.T) {
	suite.Run(t, new(ProspectServiceTestSuite))
}
