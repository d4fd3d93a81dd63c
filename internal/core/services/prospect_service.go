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
	"github.com/guibecker772/advisor-control/internal/utils/ledger"
)

// Origin stamped on ledger entries written by the conversion flow.
const conversionOrigin = "prospect"

type prospectService struct {
	BaseService
	prospectRepo portsrepo.ProspectRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
	captacaoRepo portsrepo.CaptacaoRepositoryFacade
	uow          portsrepo.UnitOfWork
}

// NewProspectService creates the prospect service. Prospect, client and ledger
// writes of one save share a transaction opened through uow.
func NewProspectService(
	prospectRepo portsrepo.ProspectRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	captacaoRepo portsrepo.CaptacaoRepositoryFacade,
	uow portsrepo.UnitOfWork,
	options ...Option,
) portssvc.ProspectSvcFacade {
	return &prospectService{
		BaseService:  newBaseService(options...),
		prospectRepo: prospectRepo,
		clientRepo:   clientRepo,
		captacaoRepo: captacaoRepo,
		uow:          uow,
	}
}

var _ portssvc.ProspectSvcFacade = (*prospectService)(nil)

func (s *prospectService) GetProspectByID(ctx context.Context, ownerID, prospectID string) (*domain.Prospect, error) {
	prospect, err := s.prospectRepo.FindProspectByID(ctx, ownerID, prospectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get prospect", slog.String("prospect_id", prospectID))
		return nil, err
	}
	return prospect, nil
}

func (s *prospectService) ListProspects(ctx context.Context, ownerID string) ([]domain.Prospect, error) {
	prospects, err := s.prospectRepo.ListProspects(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list prospects", slog.String("owner_id", ownerID))
		return nil, err
	}
	if prospects == nil {
		return []domain.Prospect{}, nil
	}
	return prospects, nil
}

// applyProspectRequest overwrites the editable fields of p. Conversion state
// (Converted, ConvertedClientID) is left to the conversion flow.
func applyProspectRequest(p *domain.Prospect, req dto.ProspectRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.Email = strings.TrimSpace(req.Email)
	p.Phone = strings.TrimSpace(req.Phone)
	p.Origin = strings.TrimSpace(req.Origin)
	p.Status = strings.TrimSpace(req.Status)
	p.PotentialValue = req.PotentialValue
	p.PotentialType = strings.TrimSpace(req.PotentialType)
	p.Probability = req.Probability
	p.NextContactDate = dates.Normalize(req.NextContactDate)
	p.RealizedValue = req.RealizedValue
	p.RealizedType = strings.TrimSpace(req.RealizedType)
	p.RealizedDate = dates.Normalize(req.RealizedDate)
	p.Notes = strings.TrimSpace(req.Notes)
}

func (s *prospectService) SaveProspect(ctx context.Context, ownerID, prospectID string, req dto.ProspectRequest) (*domain.Prospect, domain.ConversionTransition, error) {
	var draft domain.Prospect
	applyProspectRequest(&draft, req)
	if draft.Name == "" {
		return nil, domain.TransitionNone, apperrors.NewAppError(http.StatusBadRequest, "name is required", apperrors.ErrValidation)
	}
	// Checked before anything is read or written so a rejected save leaves no trace.
	if draft.IsWon() {
		if gaps := draft.ConversionGaps(); len(gaps) > 0 {
			return nil, domain.TransitionNone, apperrors.WithDetails(apperrors.ErrConversionRequirements,
				"a won prospect needs a realized value and date", gaps)
		}
	}

	var (
		saved      domain.Prospect
		transition domain.ConversionTransition
	)
	err := s.uow.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.Now()
		var current *domain.Prospect
		if prospectID != "" {
			found, err := s.prospectRepo.FindProspectByID(txCtx, ownerID, prospectID)
			if err != nil {
				return err
			}
			current = found
		}

		next := domain.Prospect{
			ProspectID:  uuid.NewString(),
			OwnerID:     ownerID,
			AuditFields: domain.NewAuditFields(ownerID, now),
		}
		if current != nil {
			next = *current
			next.Touch(ownerID, now)
		}
		applyProspectRequest(&next, req)

		var err error
		switch {
		case next.IsWon() && !next.Converted:
			transition = domain.TransitionConverted
			err = s.convert(txCtx, &next, req.ClientID, now)
		case next.IsWon():
			transition = domain.TransitionUpdated
			err = s.refreshConversionEntry(txCtx, next, now)
		case next.Converted:
			transition = domain.TransitionReverted
			err = s.revert(txCtx, *current, now)
			next.Converted = false
		}
		if err != nil {
			return err
		}

		if current == nil {
			err = s.prospectRepo.SaveProspect(txCtx, next)
		} else {
			version := expectedVersion(req.Version, current.Version)
			err = s.prospectRepo.UpdateProspect(txCtx, next, version)
			next.Version = version + 1
		}
		if err != nil {
			return err
		}
		saved = next
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save prospect", slog.String("prospect_id", prospectID))
		return nil, domain.TransitionNone, err
	}

	s.LogInfo(ctx, "Prospect saved successfully",
		slog.String("prospect_id", saved.ProspectID),
		slog.String("transition", string(transition)))
	scopes := []string{events.ScopeProspects}
	entityIDs := []string{saved.ProspectID}
	if transition != domain.TransitionNone {
		scopes = append(scopes, events.ScopeClients, events.ScopeCaptacao)
		if saved.ConvertedClientID != "" {
			entityIDs = append(entityIDs, saved.ConvertedClientID)
		}
	}
	s.Invalidate(ctx, ownerID, entityIDs, scopes...)
	return &saved, transition, nil
}

// convert links p to a client and books its conversion entry. A reversal left
// by an earlier un-conversion is removed so the ledger nets to the conversion.
func (s *prospectService) convert(ctx context.Context, p *domain.Prospect, requestedClientID string, now time.Time) error {
	client, err := s.linkClient(ctx, *p, strings.TrimSpace(requestedClientID), now)
	if err != nil {
		return err
	}

	entry := conversionEntry(*p, client.ClientID, client.Name, now)
	if _, err := s.captacaoRepo.UpsertLancamentoBySourceRef(ctx, entry); err != nil {
		return err
	}
	if err := s.captacaoRepo.DeleteLancamentoBySourceRef(ctx, p.OwnerID, domain.ProspectReversalRef(p.ProspectID)); err != nil {
		return err
	}

	p.Converted = true
	p.ConvertedClientID = client.ClientID
	return nil
}

// linkClient returns the client a conversion books against: the requested one,
// else the one kept from an earlier conversion, else a new client built from p.
func (s *prospectService) linkClient(ctx context.Context, p domain.Prospect, requestedClientID string, now time.Time) (*domain.Client, error) {
	clientID := requestedClientID
	if clientID == "" {
		clientID = p.ConvertedClientID
	}

	if clientID != "" {
		ownerID, err := s.clientRepo.FindClientOwner(ctx, clientID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound) && requestedClientID == "":
			// the previously linked client is gone; start over with a new one
			clientID = ""
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewAppError(http.StatusUnprocessableEntity,
				fmt.Sprintf("client %s does not exist", clientID), apperrors.ErrValidation)
		case err != nil:
			return nil, err
		case ownerID != p.OwnerID:
			return nil, apperrors.WithMessage(apperrors.ErrLinkForbidden,
				fmt.Sprintf("client %s belongs to another advisor", clientID))
		}
	}

	if clientID == "" {
		client := domain.Client{
			ClientID:         uuid.NewString(),
			OwnerID:          p.OwnerID,
			Name:             p.Name,
			Email:            p.Email,
			Phone:            p.Phone,
			Origin:           p.Origin,
			Status:           domain.ClientActive,
			Custody:          p.RealizedValue,
			Notes:            p.Notes,
			SourceProspectID: p.ProspectID,
			AuditFields:      domain.NewAuditFields(p.OwnerID, now),
		}
		if err := s.clientRepo.SaveClient(ctx, client); err != nil {
			return nil, err
		}
		return &client, nil
	}

	client, err := s.clientRepo.FindClientByID(ctx, p.OwnerID, clientID)
	if err != nil {
		return nil, err
	}
	client.Status = domain.ClientActive
	if client.SourceProspectID == "" {
		client.SourceProspectID = p.ProspectID
	}
	if client.Email == "" {
		client.Email = p.Email
	}
	if client.Phone == "" {
		client.Phone = p.Phone
	}
	if client.Origin == "" {
		client.Origin = p.Origin
	}
	client.Touch(p.OwnerID, now)
	if err := s.clientRepo.UpdateClient(ctx, *client, client.Version); err != nil {
		return nil, err
	}
	client.Version++
	return client, nil
}

// refreshConversionEntry rewrites the conversion entry of an already converted
// prospect so it follows edits of the realized value, type and date.
func (s *prospectService) refreshConversionEntry(ctx context.Context, p domain.Prospect, now time.Time) error {
	clientID, clientName := p.ConvertedClientID, p.Name
	existing, err := s.captacaoRepo.FindLancamentoBySourceRef(ctx, p.OwnerID, domain.ProspectConversionRef(p.ProspectID))
	switch {
	case err == nil:
		clientID, clientName = existing.ClientID, existing.ClientName
	case !errors.Is(err, apperrors.ErrNotFound):
		return err
	}
	_, err = s.captacaoRepo.UpsertLancamentoBySourceRef(ctx, conversionEntry(p, clientID, clientName, now))
	return err
}

// revert books the entry offsetting the conversion of p. The client is kept.
func (s *prospectService) revert(ctx context.Context, p domain.Prospect, now time.Time) error {
	original, err := s.captacaoRepo.FindLancamentoBySourceRef(ctx, p.OwnerID, domain.ProspectConversionRef(p.ProspectID))
	if errors.Is(err, apperrors.ErrNotFound) {
		rebuilt := conversionEntry(p, p.ConvertedClientID, p.Name, now)
		original = &rebuilt
	} else if err != nil {
		return err
	}

	today := dates.Today(now)
	t, _ := dates.Parse(today)
	reversal := domain.CaptacaoLancamento{
		LancamentoID: uuid.NewString(),
		OwnerID:      p.OwnerID,
		ClientID:     original.ClientID,
		ClientName:   original.ClientName,
		Date:         today,
		Month:        int(t.Month()),
		Year:         t.Year(),
		Direction:    original.Direction.Opposite(),
		Type:         original.Type,
		Value:        original.Value.Abs(),
		Origin:       conversionOrigin,
		Description:  fmt.Sprintf("Estorno da conversão do prospect %s", p.Name),
		SourceRef:    domain.ProspectReversalRef(p.ProspectID),
		AuditFields:  domain.NewAuditFields(p.OwnerID, now),
	}
	_, err = s.captacaoRepo.UpsertLancamentoBySourceRef(ctx, reversal)
	return err
}

func conversionEntry(p domain.Prospect, clientID, clientName string, now time.Time) domain.CaptacaoLancamento {
	realized, _ := dates.Parse(p.RealizedDate)
	return domain.CaptacaoLancamento{
		LancamentoID: uuid.NewString(),
		OwnerID:      p.OwnerID,
		ClientID:     clientID,
		ClientName:   clientName,
		Date:         realized.Format(dates.DateLayout),
		Month:        int(realized.Month()),
		Year:         realized.Year(),
		Direction:    ledger.InferDirection(p.RealizedType, p.RealizedValue),
		Type:         ledger.NormalizeType(p.RealizedType),
		Value:        p.RealizedValue.Abs(),
		Origin:       conversionOrigin,
		Description:  fmt.Sprintf("Conversão do prospect %s", p.Name),
		SourceRef:    domain.ProspectConversionRef(p.ProspectID),
		AuditFields:  domain.NewAuditFields(p.OwnerID, now),
	}
}

// DeleteProspect removes the prospect. A converted prospect gets its reversal
// entry in the same transaction; its client is kept.
func (s *prospectService) DeleteProspect(ctx context.Context, ownerID, prospectID string) error {
	var reverted bool
	err := s.uow.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.prospectRepo.FindProspectByID(txCtx, ownerID, prospectID)
		if err != nil {
			return err
		}
		if current.Converted {
			if err := s.revert(txCtx, *current, s.Now()); err != nil {
				return err
			}
			reverted = true
		}
		return s.prospectRepo.DeleteProspect(txCtx, ownerID, prospectID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete prospect", slog.String("prospect_id", prospectID))
		return err
	}

	s.LogInfo(ctx, "Prospect deleted successfully", slog.String("prospect_id", prospectID))
	scopes := []string{events.ScopeProspects}
	if reverted {
		scopes = append(scopes, events.ScopeCaptacao)
	}
	s.Invalidate(ctx, ownerID, []string{prospectID}, scopes...)
	return nil
}
