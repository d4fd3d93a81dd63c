package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/guibecker772/advisor-control/internal/apperrors"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	"github.com/guibecker772/advisor-control/internal/models"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
	"github.com/guibecker772/advisor-control/internal/utils/mapping"
	"github.com/guibecker772/advisor-control/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCaptacaoRepository struct {
	BaseRepository
}

// newPgxCaptacaoRepository creates a new repository for captação ledger entries.
func newPgxCaptacaoRepository(pool *pgxpool.Pool) portsrepo.CaptacaoRepositoryFacade {
	return &PgxCaptacaoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CaptacaoRepositoryFacade = (*PgxCaptacaoRepository)(nil)

const lancamentoColumns = `
	lancamento_id, owner_id, client_id, client_name, entry_date, month, year, direction, entry_type,
	value, origin, description, source_ref, created_at, created_by, last_updated_at, last_updated_by, version
`

const lancamentoSelectQuery = `SELECT ` + lancamentoColumns + ` FROM captacao_lancamentos `

func (r *PgxCaptacaoRepository) getLancamentos(ctx context.Context, filterQuery string, args ...any) ([]domain.CaptacaoLancamento, error) {
	rows, err := r.db(ctx).Query(ctx, lancamentoSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query captacao lancamentos", err)
	}
	defer rows.Close()
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CaptacaoLancamento])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect captacao lancamento rows", err)
	}
	return mapping.ToDomainLancamentoSlice(modelRows), nil
}

func (r *PgxCaptacaoRepository) findOne(ctx context.Context, filterQuery string, args ...any) (*domain.CaptacaoLancamento, error) {
	list, err := r.getLancamentos(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &list[0], nil
}

func (r *PgxCaptacaoRepository) FindLancamentoByID(ctx context.Context, ownerID, lancamentoID string) (*domain.CaptacaoLancamento, error) {
	return r.findOne(ctx, `WHERE lancamento_id = $1 AND owner_id = $2;`, lancamentoID, ownerID)
}

func (r *PgxCaptacaoRepository) FindLancamentoBySourceRef(ctx context.Context, ownerID, sourceRef string) (*domain.CaptacaoLancamento, error) {
	return r.findOne(ctx, `WHERE owner_id = $1 AND source_ref = $2;`, ownerID, sourceRef)
}

// ListLancamentos retrieves a page of entries ordered by entry date then creation time, newest first.
func (r *PgxCaptacaoRepository) ListLancamentos(ctx context.Context, ownerID string, filter domain.LancamentoFilter, limit int, nextToken *string) ([]domain.CaptacaoLancamento, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	filterClause := `WHERE owner_id = $1`
	args := []any{ownerID}
	if filter.Year > 0 {
		args = append(args, filter.Year)
		filterClause += ` AND year = $` + strconv.Itoa(len(args))
	}
	if filter.Month > 0 {
		args = append(args, filter.Month)
		filterClause += ` AND month = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, decodeErr))
		}
		args = append(args, lastDate, lastCreatedAt)
		filterClause += ` AND (entry_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := filterClause + ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	list, err := r.getLancamentos(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(list) > limit {
		last := list[limit-1]
		lastDate, _ := dates.Parse(last.Date)
		token := pagination.EncodeToken(lastDate, last.CreatedAt)
		nextTokenVal = &token
		list = list[:limit]
	}
	return list, nextTokenVal, nil
}

func (r *PgxCaptacaoRepository) ListLancamentosBetween(ctx context.Context, ownerID, from, to string) ([]domain.CaptacaoLancamento, error) {
	return r.getLancamentos(ctx,
		`WHERE owner_id = $1 AND entry_date >= $2::date AND entry_date < $3::date ORDER BY entry_date, created_at;`,
		ownerID, from, to)
}

func (r *PgxCaptacaoRepository) SaveLancamento(ctx context.Context, lancamento domain.CaptacaoLancamento) error {
	m := mapping.ToModelLancamento(lancamento)
	query := `
		INSERT INTO captacao_lancamentos (` + lancamentoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.LancamentoID, m.OwnerID, m.ClientID, m.ClientName, m.EntryDate, m.Month, m.Year, m.Direction, m.EntryType,
		m.Value, m.Origin, m.Description, m.SourceRef, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return wrapWriteError(err, "captacao lancamento "+m.LancamentoID)
	}
	return nil
}

func (r *PgxCaptacaoRepository) UpdateLancamento(ctx context.Context, lancamento domain.CaptacaoLancamento, expectedVersion int64) error {
	m := mapping.ToModelLancamento(lancamento)
	query := `
		UPDATE captacao_lancamentos
		SET client_id = $3, client_name = $4, entry_date = $5, month = $6, year = $7, direction = $8,
			entry_type = $9, value = $10, origin = $11, description = $12,
			last_updated_at = $13, last_updated_by = $14, version = version + 1
		WHERE lancamento_id = $1 AND owner_id = $2 AND version = $15;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.LancamentoID, m.OwnerID, m.ClientID, m.ClientName, m.EntryDate, m.Month, m.Year, m.Direction,
		m.EntryType, m.Value, m.Origin, m.Description,
		m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
	)
	if err != nil {
		return wrapWriteError(err, "captacao lancamento "+m.LancamentoID)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrConflict(ctx, "captacao_lancamentos", "lancamento_id", m.LancamentoID, m.OwnerID)
	}
	return nil
}

func (r *PgxCaptacaoRepository) DeleteLancamento(ctx context.Context, ownerID, lancamentoID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM captacao_lancamentos WHERE lancamento_id = $1 AND owner_id = $2;`, lancamentoID, ownerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete captacao lancamento "+lancamentoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertLancamentoBySourceRef keeps the id and creation stamp of an existing row.
func (r *PgxCaptacaoRepository) UpsertLancamentoBySourceRef(ctx context.Context, lancamento domain.CaptacaoLancamento) (*domain.CaptacaoLancamento, error) {
	if lancamento.SourceRef == "" {
		return nil, apperrors.NewAppError(400, "sourceRef is required for an upsert", apperrors.ErrValidation)
	}
	m := mapping.ToModelLancamento(lancamento)
	query := `
		INSERT INTO captacao_lancamentos (` + lancamentoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (owner_id, source_ref) DO UPDATE
		SET client_id = EXCLUDED.client_id, client_name = EXCLUDED.client_name, entry_date = EXCLUDED.entry_date,
			month = EXCLUDED.month, year = EXCLUDED.year, direction = EXCLUDED.direction,
			entry_type = EXCLUDED.entry_type, value = EXCLUDED.value, origin = EXCLUDED.origin,
			description = EXCLUDED.description, last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by, version = captacao_lancamentos.version + 1
		RETURNING ` + lancamentoColumns + `;
	`
	rows, err := r.db(ctx).Query(ctx, query,
		m.LancamentoID, m.OwnerID, m.ClientID, m.ClientName, m.EntryDate, m.Month, m.Year, m.Direction, m.EntryType,
		m.Value, m.Origin, m.Description, m.SourceRef, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return nil, wrapWriteError(err, "captacao lancamento "+lancamento.SourceRef)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CaptacaoLancamento])
	if err != nil {
		return nil, wrapWriteError(err, "captacao lancamento "+lancamento.SourceRef)
	}
	d := mapping.ToDomainLancamento(stored)
	return &d, nil
}

func (r *PgxCaptacaoRepository) DeleteLancamentoBySourceRef(ctx context.Context, ownerID, sourceRef string) error {
	_, err := r.db(ctx).Exec(ctx, `DELETE FROM captacao_lancamentos WHERE owner_id = $1 AND source_ref = $2;`, ownerID, sourceRef)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete captacao lancamento "+sourceRef, err)
	}
	return nil
}
