package pgsql

import (
	"context"
	"errors"

	"github.com/guibecker772/advisor-control/internal/apperrors"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	portsrepo "github.com/guibecker772/advisor-control/internal/core/ports/repositories"
	"github.com/guibecker772/advisor-control/internal/models"
	"github.com/guibecker772/advisor-control/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientSelectQuery = `
SELECT
	client_id, owner_id, name, email, phone, origin, status, custody, notes, source_prospect_id,
	created_at, created_by, last_updated_at, last_updated_by, version
FROM clients
`

func (r *PgxClientRepository) getClients(ctx context.Context, filterQuery string, args ...any) ([]domain.Client, error) {
	rows, err := r.db(ctx).Query(ctx, clientSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	defer rows.Close()
	modelClients, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect client rows", err)
	}
	return mapping.ToDomainClientSlice(modelClients), nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, ownerID, clientID string) (*domain.Client, error) {
	clients, err := r.getClients(ctx, `WHERE client_id = $1 AND owner_id = $2;`, clientID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &clients[0], nil
}

func (r *PgxClientRepository) FindClientOwner(ctx context.Context, clientID string) (string, error) {
	var ownerID string
	err := r.db(ctx).QueryRow(ctx, `SELECT owner_id FROM clients WHERE client_id = $1;`, clientID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to find owner of client "+clientID, err)
	}
	return ownerID, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, ownerID string) ([]domain.Client, error) {
	return r.getClients(ctx, `WHERE owner_id = $1 ORDER BY lower(name), created_at;`, ownerID)
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (
			client_id, owner_id, name, email, phone, origin, status, custody, notes, source_prospect_id,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ClientID, m.OwnerID, m.Name, m.Email, m.Phone, m.Origin, m.Status, m.Custody, m.Notes, m.SourceProspectID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return wrapWriteError(err, "client "+m.ClientID)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client, expectedVersion int64) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $3, email = $4, phone = $5, origin = $6, status = $7, custody = $8, notes = $9,
			source_prospect_id = $10, last_updated_at = $11, last_updated_by = $12, version = version + 1
		WHERE client_id = $1 AND owner_id = $2 AND version = $13;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.ClientID, m.OwnerID, m.Name, m.Email, m.Phone, m.Origin, m.Status, m.Custody, m.Notes,
		m.SourceProspectID, m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
	)
	if err != nil {
		return wrapWriteError(err, "client "+m.ClientID)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrConflict(ctx, "clients", "client_id", m.ClientID, m.OwnerID)
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, ownerID, clientID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM clients WHERE client_id = $1 AND owner_id = $2;`, clientID, ownerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete client "+clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
