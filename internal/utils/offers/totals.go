package offers

import (
	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalcOfferReservationTotals computes the commission breakdown of offer.
// Cancelled allocations do not count towards the allocated total.
func CalcOfferReservationTotals(offer domain.Offer) domain.OfferTotals {
	total := decimal.Zero
	for _, a := range offer.Allocations {
		if parseAllocationStatus(string(a.Status)) == domain.AllocationCancelled {
			continue
		}
		if a.AllocatedValue.IsPositive() {
			total = total.Add(a.AllocatedValue)
		}
	}

	var revenue decimal.Decimal
	if parseCommissionMode(offer.CommissionMode) == domain.CommissionFixedRevenue {
		revenue = offer.FixedRevenue
	} else {
		revenue = total.Mul(offer.RoaPercent.Decimal())
	}

	gross := revenue.Mul(offer.RepassePercent.Decimal())
	tax := gross.Mul(offer.TaxPercent.Decimal())

	return domain.OfferTotals{
		TotalAllocated: total,
		RevenueHouse:   revenue,
		AdvisorGross:   gross,
		AdvisorTax:     tax,
		AdvisorNet:     gross.Sub(tax),
	}
}
