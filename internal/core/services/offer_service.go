package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guibecker772/advisor-control/internal/apperrors"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/dto"
	"github.com/guibecker772/advisor-control/internal/events"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
	"github.com/guibecker772/advisor-control/internal/utils/offers"
	"github.com/patrickmn/go-cache"
)

// DefaultOfferIndexTTL is how long an owner's offer index lives without invalidations.
const DefaultOfferIndexTTL = 10 * time.Minute

type offerService struct {
	BaseService
	offerRepo  portsrepo.OfferRepositoryFacade
	clientRepo portsrepo.ClientReader
	index      *cache.Cache
}

// OfferOption configures the offer service.
type OfferOption func(*offerService)

// WithOfferIndexTTL sets the lifetime of cached offer indexes.
func WithOfferIndexTTL(ttl time.Duration) OfferOption {
	return func(s *offerService) {
		if ttl > 0 {
			s.index = cache.New(ttl, 2*ttl)
		}
	}
}

// WithInvalidationSource drops an owner's offer index whenever its offers change.
func WithInvalidationSource(source events.Source) OfferOption {
	return func(s *offerService) {
		source.Subscribe(s.onInvalidation)
	}
}

// WithBaseOptions applies the options shared by every service.
func WithBaseOptions(options ...Option) OfferOption {
	return func(s *offerService) {
		for _, option := range options {
			option(&s.BaseService)
		}
	}
}

// NewOfferService creates the offer service.
func NewOfferService(offerRepo portsrepo.OfferRepositoryFacade, clientRepo portsrepo.ClientReader, options ...OfferOption) portssvc.OfferSvcFacade {
	svc := &offerService{
		BaseService: newBaseService(),
		offerRepo:   offerRepo,
		clientRepo:  clientRepo,
		index:       cache.New(DefaultOfferIndexTTL, 2*DefaultOfferIndexTTL),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OfferSvcFacade = (*offerService)(nil)

func (s *offerService) onInvalidation(ev events.Invalidation) {
	if ev.HasScope(events.ScopeOffers) {
		s.index.Delete(ev.OwnerID)
	}
}

// ownerIndex returns the cached index of ownerID, building it on a miss.
func (s *offerService) ownerIndex(ctx context.Context, ownerID string) (*offerIndex, error) {
	if cached, found := s.index.Get(ownerID); found {
		return cached.(*offerIndex), nil
	}
	return s.rebuildIndex(ctx, ownerID)
}

func (s *offerService) rebuildIndex(ctx context.Context, ownerID string) (*offerIndex, error) {
	list, err := s.offerRepo.ListOffers(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	idx := buildOfferIndex(list)
	s.index.SetDefault(ownerID, idx)
	s.LogDebug(ctx, "Offer index rebuilt", slog.String("owner_id", ownerID), slog.Int("offers", len(list)))
	return idx, nil
}

func (s *offerService) GetOfferByID(ctx context.Context, ownerID, offerID string) (*domain.Offer, error) {
	offer, err := s.offerRepo.FindOfferByID(ctx, ownerID, offerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get offer", slog.String("offer_id", offerID))
		return nil, err
	}
	return offer, nil
}

func (s *offerService) ListOffers(ctx context.Context, ownerID string, filter domain.OfferFilter) ([]domain.Offer, error) {
	normalized := domain.OfferFilter{CompetenceMonth: dates.NormalizeMonth(filter.CompetenceMonth)}
	if filter.CompetenceMonth != "" && normalized.CompetenceMonth == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "competenceMonth must be a YYYY-MM month", apperrors.ErrValidation)
	}
	if filter.Status != "" {
		status, ok := offers.ParseOfferStatus(string(filter.Status))
		if !ok {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "unknown offer status "+string(filter.Status), apperrors.ErrValidation)
		}
		normalized.Status = status
	}

	idx, err := s.ownerIndex(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load offer index", slog.String("owner_id", ownerID))
		return nil, err
	}
	return idx.lookup(normalized), nil
}

func (s *offerService) GetOfferTotals(ctx context.Context, ownerID, offerID string) (domain.OfferTotals, error) {
	offer, err := s.GetOfferByID(ctx, ownerID, offerID)
	if err != nil {
		return domain.OfferTotals{}, err
	}
	return offers.CalcOfferReservationTotals(*offer), nil
}

func validateOffer(offer domain.Offer) error {
	if offer.AssetName == "" {
		return apperrors.NewAppError(http.StatusBadRequest, "assetName is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *offerService) CreateOffer(ctx context.Context, ownerID string, req dto.OfferRequest) (*domain.Offer, error) {
	raw := req.ToDomain()
	raw.OfferID = uuid.NewString()
	raw.OwnerID = ownerID
	raw.AuditFields = domain.NewAuditFields(ownerID, s.Now())

	offer := offers.NormalizeOfferForPersistence(raw)
	if err := validateOffer(offer); err != nil {
		return nil, err
	}

	if err := s.offerRepo.SaveOffer(ctx, offer); err != nil {
		s.LogError(ctx, err, "Failed to save offer", slog.String("offer_id", offer.OfferID))
		return nil, err
	}

	s.LogInfo(ctx, "Offer created successfully", slog.String("offer_id", offer.OfferID))
	s.Invalidate(ctx, ownerID, []string{offer.OfferID}, events.ScopeOffers)
	return &offer, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, ownerID, offerID string, req dto.OfferRequest) (*domain.Offer, error) {
	current, err := s.offerRepo.FindOfferByID(ctx, ownerID, offerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find offer for update", slog.String("offer_id", offerID))
		return nil, err
	}

	raw := req.ToDomain()
	raw.OfferID = current.OfferID
	raw.OwnerID = current.OwnerID
	raw.AuditFields = current.AuditFields
	raw.Touch(ownerID, s.Now())

	offer := offers.NormalizeOfferForPersistence(raw)
	if err := validateOffer(offer); err != nil {
		return nil, err
	}

	version := expectedVersion(req.Version, current.Version)
	if err := s.offerRepo.UpdateOffer(ctx, offer, version); err != nil {
		s.LogError(ctx, err, "Failed to update offer", slog.String("offer_id", offerID))
		return nil, err
	}
	offer.Version = version + 1

	s.LogInfo(ctx, "Offer updated successfully", slog.String("offer_id", offerID))
	s.Invalidate(ctx, ownerID, []string{offerID}, events.ScopeOffers)
	return &offer, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, ownerID, offerID string) error {
	if err := s.offerRepo.DeleteOffer(ctx, ownerID, offerID); err != nil {
		s.LogError(ctx, err, "Failed to delete offer", slog.String("offer_id", offerID))
		return err
	}
	s.LogInfo(ctx, "Offer deleted successfully", slog.String("offer_id", offerID))
	s.Invalidate(ctx, ownerID, []string{offerID}, events.ScopeOffers)
	return nil
}

// AddReservationToOffer loads the offer and applies the reservation. Refusals of
// the engine come back as a result with OK false; only an accepted reservation
// has its client checked against ownerID before it is stored.
func (s *offerService) AddReservationToOffer(ctx context.Context, ownerID, offerID string, input offers.ReservationInput) (offers.ReservationResult, error) {
	offer, err := s.offerRepo.FindOfferByID(ctx, ownerID, offerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return offers.ApplyReservationToOfferSnapshot(nil, input, s.Now()), nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load offer for reservation", slog.String("offer_id", offerID))
		return offers.ReservationResult{}, err
	}

	result := offers.ApplyReservationToOfferSnapshot(offer, input, s.Now())
	if !result.OK {
		s.LogInfo(ctx, "Reservation refused",
			slog.String("offer_id", offerID),
			slog.String("reason", string(result.Reason)))
		return result, nil
	}

	clientID := strings.TrimSpace(input.ClientID)
	clientOwner, err := s.clientRepo.FindClientOwner(ctx, clientID)
	if errors.Is(err, apperrors.ErrNotFound) || (err == nil && clientOwner != ownerID) {
		return offers.ReservationResult{}, apperrors.WithMessage(apperrors.ErrLinkForbidden,
			fmt.Sprintf("client %s is not one of your clients", clientID))
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to check client owner", slog.String("client_id", clientID))
		return offers.ReservationResult{}, err
	}

	next := result.Offer
	next.Touch(ownerID, s.Now())
	if err := s.offerRepo.UpdateOffer(ctx, *next, offer.Version); err != nil {
		s.LogError(ctx, err, "Failed to persist reservation", slog.String("offer_id", offerID))
		return offers.ReservationResult{}, err
	}
	next.Version = offer.Version + 1

	s.LogInfo(ctx, "Reservation added to offer",
		slog.String("offer_id", offerID),
		slog.String("client_id", input.ClientID))
	s.Invalidate(ctx, ownerID, []string{offerID}, events.ScopeOffers)
	if _, err := s.rebuildIndex(ctx, ownerID); err != nil {
		// the next listing rebuilds it
		s.LogError(ctx, err, "Failed to rebuild offer index", slog.String("owner_id", ownerID))
	}
	return result, nil
}
