package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guibecker772/advisor-control/internal/apperrors"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/core/services"
	"github.com/guibecker772/advisor-control/internal/dto"
	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/guibecker772/advisor-control/internal/utils/offers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OfferServiceTestSuite struct {
	suite.Suite
	offerRepo  *MockOfferRepository
	clientRepo *MockClientRepository
	bus        *events.Bus
	service    portssvc.OfferSvcFacade
	ownerID    string
	now        time.Time
}

func (suite *OfferServiceTestSuite) SetupTest() {
	suite.offerRepo = new(MockOfferRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.bus = events.NewBus(nil)
	suite.ownerID = uuid.NewString()
	suite.now = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewOfferService(suite.offerRepo, suite.clientRepo,
		services.WithBaseOptions(
			services.WithEvents(suite.bus),
			services.WithClock(func() time.Time { return suite.now }),
		),
		services.WithOfferIndexTTL(time.Minute),
		services.WithInvalidationSource(suite.bus),
	)
}

func (suite *OfferServiceTestSuite) storedOffers() []domain.Offer {
	return []domain.Offer{
		{OfferID: "o-1", OwnerID: suite.ownerID, AssetName: "CRI A", CompetenceMonth: "2026-01", Status: domain.OfferPending},
		{OfferID: "o-2", OwnerID: suite.ownerID, AssetName: "CRA B", CompetenceMonth: "2026-01", Status: domain.OfferReserved},
		{OfferID: "o-3", OwnerID: suite.ownerID, AssetName: "Debênture C", CompetenceMonth: "2026-02", Status: domain.OfferReserved},
	}
}

func (suite *OfferServiceTestSuite) TestListOffers_UsesIndex() {
	ctx := context.Background()
	suite.offerRepo.On("ListOffers", ctx, suite.ownerID).Return(suite.storedOffers(), nil).Once()

	tests := []struct {
		name   string
		filter domain.OfferFilter
		want   []string
	}{
		{name: "all", filter: domain.OfferFilter{}, want: []string{"o-1", "o-2", "o-3"}},
		{name: "by competence", filter: domain.OfferFilter{CompetenceMonth: "01/2026"}, want: []string{"o-1", "o-2"}},
		{name: "by competence and status", filter: domain.OfferFilter{CompetenceMonth: "2026-01", Status: "Reservada"}, want: []string{"o-2"}},
		{name: "by status", filter: domain.OfferFilter{Status: "reservada"}, want: []string{"o-2", "o-3"}},
		{name: "no match", filter: domain.OfferFilter{CompetenceMonth: "2025-12"}, want: []string{}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			list, err := suite.service.ListOffers(ctx, suite.ownerID, tt.filter)
			suite.Require().NoError(err)
			ids := make([]string, 0, len(list))
			for _, o := range list {
				ids = append(ids, o.OfferID)
			}
			suite.Equal(tt.want, ids)
		})
	}
	// one load served every lookup
	suite.offerRepo.AssertNumberOfCalls(suite.T(), "ListOffers", 1)
}

func (suite *OfferServiceTestSuite) TestListOffers_InvalidatedByOfferWrites() {
	ctx := context.Background()
	suite.offerRepo.On("ListOffers", ctx, suite.ownerID).Return(suite.storedOffers(), nil).Twice()
	suite.offerRepo.On("DeleteOffer", ctx, suite.ownerID, "o-1").Return(nil).Once()

	_, err := suite.service.ListOffers(ctx, suite.ownerID, domain.OfferFilter{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.DeleteOffer(ctx, suite.ownerID, "o-1"))
	_, err = suite.service.ListOffers(ctx, suite.ownerID, domain.OfferFilter{})
	suite.Require().NoError(err)

	suite.offerRepo.AssertNumberOfCalls(suite.T(), "ListOffers", 2)
}

func (suite *OfferServiceTestSuite) TestListOffers_OtherOwnersInvalidationKeepsIndex() {
	ctx := context.Background()
	suite.offerRepo.On("ListOffers", ctx, suite.ownerID).Return(suite.storedOffers(), nil).Once()

	_, err := suite.service.ListOffers(ctx, suite.ownerID, domain.OfferFilter{})
	suite.Require().NoError(err)
	suite.bus.Publish(events.Invalidation{OwnerID: "another-owner", Scopes: []string{events.ScopeOffers}})
	suite.bus.Publish(events.Invalidation{OwnerID: suite.ownerID, Scopes: []string{events.ScopeClients}})
	_, err = suite.service.ListOffers(ctx, suite.ownerID, domain.OfferFilter{})
	suite.Require().NoError(err)

	suite.offerRepo.AssertNumberOfCalls(suite.T(), "ListOffers", 1)
}

func (suite *OfferServiceTestSuite) TestListOffers_BadFilter() {
	_, err := suite.service.ListOffers(context.Background(), suite.ownerID, domain.OfferFilter{Status: "whatever"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListOffers(context.Background(), suite.ownerID, domain.OfferFilter{CompetenceMonth: "janeiro"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OfferServiceTestSuite) TestCreateOffer_NormalizesBeforeSaving() {
	ctx := context.Background()
	req := dto.OfferRequest{
		AssetName:       " CRI Alfa ",
		CompetenceMonth: "01/2026",
		DataLiquidacao:  "20/02/2026",
		RoaPercent:      domain.Percent{Value: decimal.NewFromInt(2)},
	}
	suite.offerRepo.On("SaveOffer", ctx, mock.MatchedBy(func(o domain.Offer) bool {
		return o.AssetName == "CRI Alfa" &&
			o.CompetenceMonth == "2026-01" &&
			o.LiquidationDate == "2026-02-20" &&
			o.Status == domain.OfferLiquidated &&
			o.LegacyLiquidationDate == "" &&
			o.RoaPercent.Decimal().Equal(decimal.RequireFromString("0.02")) &&
			o.OwnerID == suite.ownerID && o.Version == 1
	})).Return(nil).Once()

	offer, err := suite.service.CreateOffer(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(offer.OfferID)
	suite.offerRepo.AssertExpectations(suite.T())
}

func (suite *OfferServiceTestSuite) TestUpdateOffer_VersionConflict() {
	ctx := context.Background()
	current := &domain.Offer{OfferID: "o-1", OwnerID: suite.ownerID, AssetName: "CRI A", AuditFields: domain.AuditFields{Version: 5}}
	stale := int64(4)
	suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "o-1").Return(current, nil).Once()
	suite.offerRepo.On("UpdateOffer", ctx, mock.AnythingOfType("domain.Offer"), stale).
		Return(apperrors.WithMessage(apperrors.ErrVersionConflict, "changed")).Once()

	_, err := suite.service.UpdateOffer(ctx, suite.ownerID, "o-1", dto.OfferRequest{AssetName: "CRI A", Version: &stale})

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *OfferServiceTestSuite) TestAddReservationToOffer_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	stored := &domain.Offer{OfferID: "o-1", OwnerID: suite.ownerID, AssetName: "CRI A", Status: domain.OfferPending,
		CompetenceMonth: "2026-01", AuditFields: domain.AuditFields{Version: 1}}

	suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "o-1").Return(stored, nil).Once()
	suite.clientRepo.On("FindClientOwner", ctx, clientID).Return(suite.ownerID, nil).Once()
	suite.offerRepo.On("UpdateOffer", ctx, mock.MatchedBy(func(o domain.Offer) bool {
		return len(o.Allocations) == 1 && o.Allocations[0].ClientID == clientID && o.Status == domain.OfferReserved
	}), int64(1)).Return(nil).Once()
	suite.offerRepo.On("ListOffers", ctx, suite.ownerID).Return(suite.storedOffers(), nil).Once()

	result, err := suite.service.AddReservationToOffer(ctx, suite.ownerID, "o-1",
		offers.ReservationInput{ClientID: clientID, ReservedAmount: decimal.NewFromInt(10000)})

	suite.Require().NoError(err)
	suite.True(result.OK)
	suite.Equal(int64(2), result.Offer.Version)
	suite.Empty(stored.Allocations, "the loaded snapshot is not modified")

	// the index was rebuilt right after the write
	_, err = suite.service.ListOffers(ctx, suite.ownerID, domain.OfferFilter{})
	suite.Require().NoError(err)
	suite.offerRepo.AssertNumberOfCalls(suite.T(), "ListOffers", 1)
	suite.offerRepo.AssertExpectations(suite.T())
}

func (suite *OfferServiceTestSuite) TestAddReservationToOffer_ForeignClient() {
	ctx := context.Background()
	stored := &domain.Offer{OfferID: "o-1", OwnerID: suite.ownerID, Status: domain.OfferPending}
	suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "o-1").Return(stored, nil).Once()
	suite.clientRepo.On("FindClientOwner", ctx, "c-x").Return("", apperrors.ErrNotFound).Once()

	_, err := suite.service.AddReservationToOffer(ctx, suite.ownerID, "o-1",
		offers.ReservationInput{ClientID: "c-x", ReservedAmount: decimal.NewFromInt(1)})

	suite.ErrorIs(err, apperrors.ErrLinkForbidden)
	suite.offerRepo.AssertNotCalled(suite.T(), "UpdateOffer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OfferServiceTestSuite) TestAddReservationToOffer_Refusals() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.Run("missing offer", func() {
		suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "gone").Return(nil, apperrors.ErrNotFound).Once()

		result, err := suite.service.AddReservationToOffer(ctx, suite.ownerID, "gone",
			offers.ReservationInput{ClientID: clientID, ReservedAmount: decimal.NewFromInt(1)})

		suite.Require().NoError(err)
		suite.False(result.OK)
		suite.Equal(offers.ReasonOfferNotFound, result.Reason)
	})

	suite.Run("liquidated offer", func() {
		locked := &domain.Offer{OfferID: "o-l", OwnerID: suite.ownerID, LiquidationDate: "2026-01-15", Status: domain.OfferLiquidated}
		suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "o-l").Return(locked, nil).Once()

		result, err := suite.service.AddReservationToOffer(ctx, suite.ownerID, "o-l",
			offers.ReservationInput{ClientID: clientID, ReservedAmount: decimal.NewFromInt(1)})

		suite.Require().NoError(err)
		suite.Equal(offers.ReasonOfferLocked, result.Reason)
	})

	suite.Run("duplicate client", func() {
		taken := &domain.Offer{OfferID: "o-d", OwnerID: suite.ownerID, Status: domain.OfferReserved,
			Allocations: []domain.Allocation{{ClientID: clientID, AllocatedValue: decimal.NewFromInt(5)}}}
		suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "o-d").Return(taken, nil).Once()

		result, err := suite.service.AddReservationToOffer(ctx, suite.ownerID, "o-d",
			offers.ReservationInput{ClientID: clientID, ReservedAmount: decimal.NewFromInt(1)})

		suite.Require().NoError(err)
		suite.Equal(offers.ReasonDuplicateClient, result.Reason)
		suite.Equal(clientID, result.DuplicateClientID)
	})

	suite.Run("cancelled offer with someone else's client", func() {
		cancelled := &domain.Offer{OfferID: "o-c", OwnerID: suite.ownerID, Status: domain.OfferCancelled}
		suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "o-c").Return(cancelled, nil).Once()

		result, err := suite.service.AddReservationToOffer(ctx, suite.ownerID, "o-c",
			offers.ReservationInput{ClientID: "c-foreign", ReservedAmount: decimal.NewFromInt(1)})

		suite.Require().NoError(err)
		suite.False(result.OK)
		suite.Equal(offers.ReasonOfferLocked, result.Reason)
	})

	suite.Run("missing client id", func() {
		open := &domain.Offer{OfferID: "o-i", OwnerID: suite.ownerID, Status: domain.OfferPending}
		suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "o-i").Return(open, nil).Once()

		result, err := suite.service.AddReservationToOffer(ctx, suite.ownerID, "o-i",
			offers.ReservationInput{ClientID: "  ", ReservedAmount: decimal.NewFromInt(1)})

		suite.Require().NoError(err)
		suite.Equal(offers.ReasonInvalidInput, result.Reason)
	})

	suite.clientRepo.AssertNotCalled(suite.T(), "FindClientOwner", mock.Anything, mock.Anything)
	suite.offerRepo.AssertNotCalled(suite.T(), "UpdateOffer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OfferServiceTestSuite) TestGetOfferTotals() {
	ctx := context.Background()
	stored := &domain.Offer{
		OfferID:        "o-1",
		CommissionMode: domain.CommissionROAPercent,
		RoaPercent:     domain.Percent{Value: decimal.NewFromInt(2), Unit: domain.UnitPercent},
		RepassePercent: domain.Percent{Value: decimal.NewFromInt(25), Unit: domain.UnitPercent},
		TaxPercent:     domain.Percent{Value: decimal.NewFromInt(19), Unit: domain.UnitPercent},
		Allocations:    []domain.Allocation{{ClientID: "c-1", AllocatedValue: decimal.NewFromInt(10000)}},
	}
	suite.offerRepo.On("FindOfferByID", ctx, suite.ownerID, "o-1").Return(stored, nil).Once()

	totals, err := suite.service.GetOfferTotals(ctx, suite.ownerID, "o-1")

	suite.Require().NoError(err)
	assert.True(suite.T(), totals.RevenueHouse.Equal(decimal.NewFromInt(200)))
	assert.True(suite.T(), totals.AdvisorNet.Equal(decimal.RequireFromString("40.5")))
}

func TestOfferService(t *testing.T) {
	suite.Run(t, new(OfferServiceTestSuite))
}
