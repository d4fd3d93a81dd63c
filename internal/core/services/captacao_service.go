package services

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/guibecker772/advisor-control/internal/utils/dates"
	"github.com/guibecker772/advisor-control/internal/utils/ledger"
)

type captacaoService struct {
	BaseService
	captacaoRepo portsrepo.CaptacaoRepositoryFacade
	clientRepo   portsrepo.ClientReader
}

// NewCaptacaoService creates the service of manual ledger entries, summaries and exports.
func NewCaptacaoService(captacaoRepo portsrepo.CaptacaoRepositoryFacade, clientRepo portsrepo.ClientReader, options ...Option) portssvc.CaptacaoSvcFacade {
	return &captacaoService{
		BaseService:  newBaseService(options...),
		captacaoRepo: captacaoRepo,
		clientRepo:   clientRepo,
	}
}

var _ portssvc.CaptacaoSvcFacade = (*captacaoService)(nil)

func (s *captacaoService) GetLancamentoByID(ctx context.Context, ownerID, lancamentoID string) (*domain.CaptacaoLancamento, error) {
	lancamento, err := s.captacaoRepo.FindLancamentoByID(ctx, ownerID, lancamentoID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get captacao lancamento", slog.String("lancamento_id", lancamentoID))
		return nil, err
	}
	return lancamento, nil
}

func (s *captacaoService) ListLancamentos(ctx context.Context, ownerID string, params dto.ListLancamentosParams) (*dto.ListLancamentosResponse, error) {
	filter := domain.LancamentoFilter{Year: params.Year, Month: params.Month}
	list, nextToken, err := s.captacaoRepo.ListLancamentos(ctx, ownerID, filter, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list captacao lancamentos", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &dto.ListLancamentosResponse{
		Lancamentos: dto.ToListLancamentoResponse(list),
		NextToken:   nextToken,
	}, nil
}

func (s *captacaoService) GetMonthlySummary(ctx context.Context, ownerID string, year, month int) (domain.CaptacaoSummary, error) {
	if err := dates.ValidMonth(year, month); err != nil {
		return domain.CaptacaoSummary{}, apperrors.NewAppError(http.StatusBadRequest, err.Error(), apperrors.ErrValidation)
	}
	from, to := dates.MonthBounds(year, month)
	entries, err := s.captacaoRepo.ListLancamentosBetween(ctx, ownerID, from.Format(dates.DateLayout), to.Format(dates.DateLayout))
	if err != nil {
		s.LogError(ctx, err, "Failed to load captacao lancamentos for summary",
			slog.Int("year", year), slog.Int("month", month))
		return domain.CaptacaoSummary{}, err
	}
	return ledger.Summarize(entries, year, month), nil
}

// applyLancamentoRequest fills the editable fields of l. The stored value is
// absolute; the direction carries the sign.
func (s *captacaoService) applyLancamentoRequest(ctx context.Context, l *domain.CaptacaoLancamento, req dto.LancamentoRequest) error {
	entryDate, ok := dates.Parse(req.Date)
	if !ok {
		return apperrors.NewAppError(http.StatusBadRequest, "data must be a valid date", apperrors.ErrValidation)
	}
	if req.Value.IsZero() {
		return apperrors.NewAppError(http.StatusBadRequest, "valor must be different from zero", apperrors.ErrValidation)
	}

	clientID := strings.TrimSpace(req.ClientID)
	clientName := strings.TrimSpace(req.ClientName)
	if clientID != "" {
		ownerID, err := s.clientRepo.FindClientOwner(ctx, clientID)
		if errors.Is(err, apperrors.ErrNotFound) || (err == nil && ownerID != l.OwnerID) {
			return apperrors.WithMessage(apperrors.ErrLinkForbidden,
				fmt.Sprintf("client %s is not one of your clients", clientID))
		}
		if err != nil {
			return err
		}
		if clientName == "" {
			client, err := s.clientRepo.FindClientByID(ctx, l.OwnerID, clientID)
			if err != nil {
				return err
			}
			clientName = client.Name
		}
	}

	l.ClientID = clientID
	l.ClientName = clientName
	l.Date = entryDate.Format(dates.DateLayout)
	l.Month = int(entryDate.Month())
	l.Year = entryDate.Year()
	l.Type = ledger.NormalizeType(req.Type)
	l.Direction = ledger.ParseDirection(req.Direction, l.Type, req.Value)
	l.Value = req.Value.Abs()
	l.Origin = strings.TrimSpace(req.Origin)
	l.Description = strings.TrimSpace(req.Description)
	return nil
}

func (s *captacaoService) CreateLancamento(ctx context.Context, ownerID string, req dto.LancamentoRequest) (*domain.CaptacaoLancamento, error) {
	lancamento := domain.CaptacaoLancamento{
		LancamentoID: uuid.NewString(),
		OwnerID:      ownerID,
		AuditFields:  domain.NewAuditFields(ownerID, s.Now()),
	}
	if err := s.applyLancamentoRequest(ctx, &lancamento, req); err != nil {
		s.LogError(ctx, err, "Invalid captacao lancamento")
		return nil, err
	}

	if err := s.captacaoRepo.SaveLancamento(ctx, lancamento); err != nil {
		s.LogError(ctx, err, "Failed to save captacao lancamento", slog.String("lancamento_id", lancamento.LancamentoID))
		return nil, err
	}

	s.LogInfo(ctx, "Captacao lancamento created successfully", slog.String("lancamento_id", lancamento.LancamentoID))
	s.Invalidate(ctx, ownerID, []string{lancamento.LancamentoID}, events.ScopeCaptacao)
	return &lancamento, nil
}

// loadManual fetches an entry the API may change; automated entries are read-only.
func (s *captacaoService) loadManual(ctx context.Context, ownerID, lancamentoID string) (*domain.CaptacaoLancamento, error) {
	lancamento, err := s.captacaoRepo.FindLancamentoByID(ctx, ownerID, lancamentoID)
	if err != nil {
		return nil, err
	}
	if lancamento.IsAutomated() {
		return nil, apperrors.NewAppError(http.StatusConflict,
			"this entry is maintained by "+lancamento.SourceRef+" and cannot be changed by hand", apperrors.ErrConflict)
	}
	return lancamento, nil
}

func (s *captacaoService) UpdateLancamento(ctx context.Context, ownerID, lancamentoID string, req dto.LancamentoRequest) (*domain.CaptacaoLancamento, error) {
	lancamento, err := s.loadManual(ctx, ownerID, lancamentoID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load captacao lancamento for update", slog.String("lancamento_id", lancamentoID))
		return nil, err
	}
	if err := s.applyLancamentoRequest(ctx, lancamento, req); err != nil {
		return nil, err
	}
	lancamento.Touch(ownerID, s.Now())

	version := expectedVersion(req.Version, lancamento.Version)
	if err := s.captacaoRepo.UpdateLancamento(ctx, *lancamento, version); err != nil {
		s.LogError(ctx, err, "Failed to update captacao lancamento", slog.String("lancamento_id", lancamentoID))
		return nil, err
	}
	lancamento.Version = version + 1

	s.LogInfo(ctx, "Captacao lancamento updated successfully", slog.String("lancamento_id", lancamentoID))
	s.Invalidate(ctx, ownerID, []string{lancamentoID}, events.ScopeCaptacao)
	return lancamento, nil
}

func (s *captacaoService) DeleteLancamento(ctx context.Context, ownerID, lancamentoID string) error {
	if _, err := s.loadManual(ctx, ownerID, lancamentoID); err != nil {
		s.LogError(ctx, err, "Failed to load captacao lancamento for delete", slog.String("lancamento_id", lancamentoID))
		return err
	}
	if err := s.captacaoRepo.DeleteLancamento(ctx, ownerID, lancamentoID); err != nil {
		s.LogError(ctx, err, "Failed to delete captacao lancamento", slog.String("lancamento_id", lancamentoID))
		return err
	}
	s.LogInfo(ctx, "Captacao lancamento deleted successfully", slog.String("lancamento_id", lancamentoID))
	s.Invalidate(ctx, ownerID, []string{lancamentoID}, events.ScopeCaptacao)
	return nil
}

// ImportLancamentos only guards the route: cross-owner imports are forbidden and
// importing itself is not offered.
func (s *captacaoService) ImportLancamentos(ctx context.Context, callerID, ownerID string) error {
	if ownerID != "" && ownerID != callerID {
		return apperrors.WithMessage(apperrors.ErrImportForbidden, "you can only import into your own ledger")
	}
	return apperrors.NewAppError(http.StatusNotImplemented, "importing captacao lancamentos is not supported", nil)
}
