// Package offers holds the pure rules applied to offer snapshots: persistence
// normalization, reservation mutation and commission totals.
package offers

import (
	"strings"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
	"github.com/guibecker772/advisor-control/internal/utils/textnorm"
	"github.com/shopspring/decimal"
)

// ParseOfferStatus maps user or legacy status text to a canonical status.
func ParseOfferStatus(raw string) (domain.OfferStatus, bool) {
	switch textnorm.Fold(raw) {
	case "pendente", "pending":
		return domain.OfferPending, true
	case "reservada", "reservado", "reserva", "reserved":
		return domain.OfferReserved, true
	case "liquidada", "liquidado", "liquidacao", "liquidated":
		return domain.OfferLiquidated, true
	case "cancelada", "cancelado", "cancelamento", "cancelled", "canceled":
		return domain.OfferCancelled, true
	}
	return "", false
}

// parseAllocationStatus shares the offer aliases; anything not liquidated or
// cancelled is a live reservation.
func parseAllocationStatus(raw string) domain.AllocationStatus {
	status, _ := ParseOfferStatus(raw)
	switch status {
	case domain.OfferLiquidated:
		return domain.AllocationLiquidated
	case domain.OfferCancelled:
		return domain.AllocationCancelled
	}
	return domain.AllocationReserved
}

func parseCommissionMode(raw domain.CommissionMode) domain.CommissionMode {
	switch textnorm.Fold(string(raw)) {
	case "fixed_revenue", "fixed", "fixo", "receita_fixa":
		return domain.CommissionFixedRevenue
	}
	return domain.CommissionROAPercent
}

func parseOfferType(raw domain.OfferType) domain.OfferType {
	switch textnorm.Fold(string(raw)) {
	case "publica", "public":
		return domain.OfferPublic
	}
	return domain.OfferPrivate
}

func parseAudience(raw domain.Audience) domain.Audience {
	switch textnorm.Fold(string(raw)) {
	case "qualificado", "qualified", "profissional":
		return domain.AudienceQualified
	}
	return domain.AudienceGeneral
}

// NormalizeOfferForPersistence returns the canonical stored shape of offer.
// It is idempotent and never touches the input slices.
func NormalizeOfferForPersistence(offer domain.Offer) domain.Offer {
	out := offer

	out.AssetName = strings.TrimSpace(offer.AssetName)
	out.AssetClass = strings.TrimSpace(offer.AssetClass)
	out.Notes = strings.TrimSpace(offer.Notes)
	out.OfferType = parseOfferType(offer.OfferType)
	out.Audience = parseAudience(offer.Audience)
	out.CommissionMode = parseCommissionMode(offer.CommissionMode)

	out.CompetenceMonth = dates.NormalizeMonth(offer.CompetenceMonth)
	out.ReservationEndDate = dates.Normalize(offer.ReservationEndDate)
	out.LiquidationDate = dates.Normalize(offer.LiquidationDate)
	if out.LiquidationDate == "" {
		out.LiquidationDate = dates.Normalize(offer.LegacyLiquidationDate)
	}

	out.MinimumInvestment = nonNegative(offer.MinimumInvestment)
	out.FixedRevenue = nonNegative(offer.FixedRevenue)
	out.RoaPercent = offer.RoaPercent.Normalized()
	out.RepassePercent = offer.RepassePercent.Normalized()
	out.TaxPercent = offer.TaxPercent.Normalized()

	out.Status = deriveStatus(offer, out.LiquidationDate)
	out.Allocations = normalizeAllocations(offer.Allocations)
	out.Materials = normalizeMaterials(offer.Materials)

	out.LegacyLiquidationDate = ""
	out.LegacyReserved = nil
	out.LegacyLiquidated = nil
	return out
}

// deriveStatus applies the status precedence: cancellation is sticky, then a
// liquidation date forces liquidada, then the explicit or legacy-flag status.
func deriveStatus(offer domain.Offer, liquidationDate string) domain.OfferStatus {
	explicit, ok := ParseOfferStatus(string(offer.Status))
	if ok && explicit == domain.OfferCancelled {
		return domain.OfferCancelled
	}
	if liquidationDate != "" {
		return domain.OfferLiquidated
	}
	if ok {
		return explicit
	}
	if offer.LegacyLiquidated != nil && *offer.LegacyLiquidated {
		return domain.OfferLiquidated
	}
	if offer.LegacyReserved != nil && *offer.LegacyReserved {
		return domain.OfferReserved
	}
	return domain.OfferPending
}

func normalizeAllocations(in []domain.Allocation) []domain.Allocation {
	out := make([]domain.Allocation, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		clientID := strings.TrimSpace(a.ClientID)
		if clientID == "" {
			continue
		}
		if _, dup := seen[clientID]; dup {
			continue
		}
		seen[clientID] = struct{}{}
		out = append(out, domain.Allocation{
			ClientID:       clientID,
			AllocatedValue: nonNegative(a.AllocatedValue),
			BalanceOK:      a.BalanceOK,
			ReservedAt:     dates.Normalize(a.ReservedAt),
			Notes:          strings.TrimSpace(a.Notes),
			Status:         parseAllocationStatus(string(a.Status)),
		})
	}
	return out
}

func normalizeMaterials(in []domain.Material) []domain.Material {
	out := make([]domain.Material, 0, min(len(in), domain.MaxOfferMaterials))
	for _, m := range in {
		if len(out) == domain.MaxOfferMaterials {
			break
		}
		name := strings.TrimSpace(m.Name)
		url := strings.TrimSpace(m.URL)
		if name == "" || url == "" {
			continue
		}
		out = append(out, domain.Material{Name: name, URL: url})
	}
	return out
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
