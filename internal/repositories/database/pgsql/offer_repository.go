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

type PgxOfferRepository struct {
	BaseRepository
}

// newPgxOfferRepository creates a new repository for offer reservations.
func newPgxOfferRepository(pool *pgxpool.Pool) portsrepo.OfferRepositoryFacade {
	return &PgxOfferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OfferRepositoryFacade = (*PgxOfferRepository)(nil)

const offerSelectQuery = `
SELECT
	offer_id, owner_id, asset_name, asset_class, offer_type, minimum_investment, competence_month,
	reservation_end_date, liquidation_date, status, audience, commission_mode, roa_percent, fixed_revenue,
	repasse_percent, tax_percent, allocations, materials, notes,
	created_at, created_by, last_updated_at, last_updated_by, version
FROM offers
`

func (r *PgxOfferRepository) getOffers(ctx context.Context, filterQuery string, args ...any) ([]domain.Offer, error) {
	rows, err := r.db(ctx).Query(ctx, offerSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query offers", err)
	}
	defer rows.Close()
	modelOffers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Offer])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect offer rows", err)
	}

	offers := make([]domain.Offer, 0, len(modelOffers))
	for _, m := range modelOffers {
		o, mapErr := mapping.ToDomainOffer(m)
		if mapErr != nil {
			return nil, apperrors.NewAppError(500, "failed to decode offer "+m.OfferID, mapErr)
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (r *PgxOfferRepository) FindOfferByID(ctx context.Context, ownerID, offerID string) (*domain.Offer, error) {
	offers, err := r.getOffers(ctx, `WHERE offer_id = $1 AND owner_id = $2;`, offerID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &offers[0], nil
}

func (r *PgxOfferRepository) ListOffers(ctx context.Context, ownerID string) ([]domain.Offer, error) {
	return r.getOffers(ctx, `WHERE owner_id = $1 ORDER BY competence_month DESC, created_at DESC;`, ownerID)
}

func (r *PgxOfferRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	m, err := mapping.ToModelOffer(offer)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode offer "+offer.OfferID, err)
	}
	query := `
		INSERT INTO offers (
			offer_id, owner_id, asset_name, asset_class, offer_type, minimum_investment, competence_month,
			reservation_end_date, liquidation_date, status, audience, commission_mode, roa_percent, fixed_revenue,
			repasse_percent, tax_percent, allocations, materials, notes,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = r.db(ctx).Exec(ctx, query,
		m.OfferID, m.OwnerID, m.AssetName, m.AssetClass, m.OfferType, m.MinimumInvestment, m.CompetenceMonth,
		m.ReservationEndDate, m.LiquidationDate, m.Status, m.Audience, m.CommissionMode, m.RoaPercent, m.FixedRevenue,
		m.RepassePercent, m.TaxPercent, m.Allocations, m.Materials, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return wrapWriteError(err, "offer "+m.OfferID)
	}
	return nil
}

func (r *PgxOfferRepository) UpdateOffer(ctx context.Context, offer domain.Offer, expectedVersion int64) error {
	m, err := mapping.ToModelOffer(offer)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode offer "+offer.OfferID, err)
	}
	query := `
		UPDATE offers
		SET asset_name = $3, asset_class = $4, offer_type = $5, minimum_investment = $6, competence_month = $7,
			reservation_end_date = $8, liquidation_date = $9, status = $10, audience = $11, commission_mode = $12,
			roa_percent = $13, fixed_revenue = $14, repasse_percent = $15, tax_percent = $16,
			allocations = $17, materials = $18, notes = $19,
			last_updated_at = $20, last_updated_by = $21, version = version + 1
		WHERE offer_id = $1 AND owner_id = $2 AND version = $22;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.OfferID, m.OwnerID, m.AssetName, m.AssetClass, m.OfferType, m.MinimumInvestment, m.CompetenceMonth,
		m.ReservationEndDate, m.LiquidationDate, m.Status, m.Audience, m.CommissionMode,
		m.RoaPercent, m.FixedRevenue, m.RepassePercent, m.TaxPercent,
		m.Allocations, m.Materials, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
	)
	if err != nil {
		return wrapWriteError(err, "offer "+m.OfferID)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrConflict(ctx, "offers", "offer_id", m.OfferID, m.OwnerID)
	}
	return nil
}

func (r *PgxOfferRepository) DeleteOffer(ctx context.Context, ownerID, offerID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM offers WHERE offer_id = $1 AND owner_id = $2;`, offerID, ownerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete offer "+offerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
