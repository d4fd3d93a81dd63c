package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/models"
)

// ToModelOffer converts a normalized domain Offer to a model Offer.
// Percent fields are stored in their 0-1 form.
func ToModelOffer(d domain.Offer) (models.Offer, error) {
	allocations := make([]models.Allocation, len(d.Allocations))
	for i, a := range d.Allocations {
		allocations[i] = models.Allocation{
			ClientID:       a.ClientID,
			AllocatedValue: a.AllocatedValue,
			BalanceOK:      a.BalanceOK,
			ReservedAt:     a.ReservedAt,
			Notes:          a.Notes,
			Status:         string(a.Status),
		}
	}
	materials := make([]models.Material, len(d.Materials))
	for i, m := range d.Materials {
		materials[i] = models.Material{Name: m.Name, URL: m.URL}
	}

	allocationsJSON, err := json.Marshal(allocations)
	if err != nil {
		return models.Offer{}, fmt.Errorf("failed to encode allocations of offer %s: %w", d.OfferID, err)
	}
	materialsJSON, err := json.Marshal(materials)
	if err != nil {
		return models.Offer{}, fmt.Errorf("failed to encode materials of offer %s: %w", d.OfferID, err)
	}

	return models.Offer{
		OfferID:            d.OfferID,
		OwnerID:            d.OwnerID,
		AssetName:          d.AssetName,
		AssetClass:         d.AssetClass,
		OfferType:          string(d.OfferType),
		MinimumInvestment:  d.MinimumInvestment,
		CompetenceMonth:    d.CompetenceMonth,
		ReservationEndDate: nullableDate(d.ReservationEndDate),
		LiquidationDate:    nullableDate(d.LiquidationDate),
		Status:             string(d.Status),
		Audience:           string(d.Audience),
		CommissionMode:     string(d.CommissionMode),
		RoaPercent:         d.RoaPercent.Decimal(),
		FixedRevenue:       d.FixedRevenue,
		RepassePercent:     d.RepassePercent.Decimal(),
		TaxPercent:         d.TaxPercent.Decimal(),
		Allocations:        allocationsJSON,
		Materials:          materialsJSON,
		Notes:              d.Notes,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainOffer converts a model Offer to a domain Offer
func ToDomainOffer(m models.Offer) (domain.Offer, error) {
	var allocations []models.Allocation
	if len(m.Allocations) > 0 {
		if err := json.Unmarshal(m.Allocations, &allocations); err != nil {
			return domain.Offer{}, fmt.Errorf("failed to decode allocations of offer %s: %w", m.OfferID, err)
		}
	}
	var materials []models.Material
	if len(m.Materials) > 0 {
		if err := json.Unmarshal(m.Materials, &materials); err != nil {
			return domain.Offer{}, fmt.Errorf("failed to decode materials of offer %s: %w", m.OfferID, err)
		}
	}

	d := domain.Offer{
		OfferID:            m.OfferID,
		OwnerID:            m.OwnerID,
		AssetName:          m.AssetName,
		AssetClass:         m.AssetClass,
		OfferType:          domain.OfferType(m.OfferType),
		MinimumInvestment:  m.MinimumInvestment,
		CompetenceMonth:    m.CompetenceMonth,
		ReservationEndDate: formatDate(m.ReservationEndDate),
		LiquidationDate:    formatDate(m.LiquidationDate),
		Status:             domain.OfferStatus(m.Status),
		Audience:           domain.Audience(m.Audience),
		CommissionMode:     domain.CommissionMode(m.CommissionMode),
		RoaPercent:         domain.DecimalRate(m.RoaPercent),
		FixedRevenue:       m.FixedRevenue,
		RepassePercent:     domain.DecimalRate(m.RepassePercent),
		TaxPercent:         domain.DecimalRate(m.TaxPercent),
		Allocations:        make([]domain.Allocation, len(allocations)),
		Materials:          make([]domain.Material, len(materials)),
		Notes:              m.Notes,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
	for i, a := range allocations {
		d.Allocations[i] = domain.Allocation{
			ClientID:       a.ClientID,
			AllocatedValue: a.AllocatedValue,
			BalanceOK:      a.BalanceOK,
			ReservedAt:     a.ReservedAt,
			Notes:          a.Notes,
			Status:         domain.AllocationStatus(a.Status),
		}
	}
	for i, mat := range materials {
		d.Materials[i] = domain.Material{Name: mat.Name, URL: mat.URL}
	}
	return d, nil
}
