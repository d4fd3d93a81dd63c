package pgsql

import (
	"context"

	"github.com/guibecker772/advisor-control/internal/apperrors"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	"github.com/guibecker772/advisor-control/internal/models"
	"github.com/guibecker772/advisor-control/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProspectRepository struct {
	BaseRepository
}

// newPgxProspectRepository creates a new repository for prospect data.
func newPgxProspectRepository(pool *pgxpool.Pool) portsrepo.ProspectRepositoryFacade {
	return &PgxProspectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProspectRepositoryFacade = (*PgxProspectRepository)(nil)

const prospectSelectQuery = `
SELECT
	prospect_id, owner_id, name, email, phone, origin, status, potential_value, potential_type,
	probability, next_contact_date, realized_value, realized_type, realized_date, converted,
	converted_client_id, notes, created_at, created_by, last_updated_at, last_updated_by, version
FROM prospects
`

func (r *PgxProspectRepository) getProspects(ctx context.Context, filterQuery string, args ...any) ([]domain.Prospect, error) {
	rows, err := r.db(ctx).Query(ctx, prospectSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query prospects", err)
	}
	defer rows.Close()
	modelProspects, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Prospect])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect prospect rows", err)
	}
	return mapping.ToDomainProspectSlice(modelProspects), nil
}

func (r *PgxProspectRepository) FindProspectByID(ctx context.Context, ownerID, prospectID string) (*domain.Prospect, error) {
	prospects, err := r.getProspects(ctx, `WHERE prospect_id = $1 AND owner_id = $2;`, prospectID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(prospects) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &prospects[0], nil
}

func (r *PgxProspectRepository) ListProspects(ctx context.Context, ownerID string) ([]domain.Prospect, error) {
	return r.getProspects(ctx, `WHERE owner_id = $1 ORDER BY last_updated_at DESC;`, ownerID)
}

func (r *PgxProspectRepository) SaveProspect(ctx context.Context, prospect domain.Prospect) error {
	m := mapping.ToModelProspect(prospect)
	query := `
		INSERT INTO prospects (
			prospect_id, owner_id, name, email, phone, origin, status, potential_value, potential_type,
			probability, next_contact_date, realized_value, realized_type, realized_date, converted,
			converted_client_id, notes, created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ProspectID, m.OwnerID, m.Name, m.Email, m.Phone, m.Origin, m.Status, m.PotentialValue, m.PotentialType,
		m.Probability, m.NextContactDate, m.RealizedValue, m.RealizedType, m.RealizedDate, m.Converted,
		m.ConvertedClientID, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return wrapWriteError(err, "prospect "+m.ProspectID)
	}
	return nil
}

func (r *PgxProspectRepository) UpdateProspect(ctx context.Context, prospect domain.Prospect, expectedVersion int64) error {
	m := mapping.ToModelProspect(prospect)
	query := `
		UPDATE prospects
		SET name = $3, email = $4, phone = $5, origin = $6, status = $7, potential_value = $8,
			potential_type = $9, probability = $10, next_contact_date = $11, realized_value = $12,
			realized_type = $13, realized_date = $14, converted = $15, converted_client_id = $16,
			notes = $17, last_updated_at = $18, last_updated_by = $19, version = version + 1
		WHERE prospect_id = $1 AND owner_id = $2 AND version = $20;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.ProspectID, m.OwnerID, m.Name, m.Email, m.Phone, m.Origin, m.Status, m.PotentialValue,
		m.PotentialType, m.Probability, m.NextContactDate, m.RealizedValue,
		m.RealizedType, m.RealizedDate, m.Converted, m.ConvertedClientID,
		m.Notes, m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
	)
	if err != nil {
		return wrapWriteError(err, "prospect "+m.ProspectID)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrConflict(ctx, "prospects", "prospect_id", m.ProspectID, m.OwnerID)
	}
	return nil
}

func (r *PgxProspectRepository) DeleteProspect(ctx context.Context, ownerID, prospectID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM prospects WHERE prospect_id = $1 AND owner_id = $2;`, prospectID, ownerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete prospect "+prospectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
