package offers

import (
	"testing"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}

func TestCalcOfferReservationTotals(t *testing.T) {
	tests := []struct {
		name  string
		offer domain.Offer
		want  [5]string // allocated, house, gross, tax, net
	}{
		{
			name: "roa mode with legacy percents",
			offer: domain.Offer{
				CommissionMode: domain.CommissionROAPercent,
				RoaPercent:     domain.Percent{Value: dec("2")},
				RepassePercent: domain.Percent{Value: dec("25")},
				TaxPercent:     domain.Percent{Value: dec("19")},
				Allocations: []domain.Allocation{
					{ClientID: "c1", AllocatedValue: dec("6000")},
					{ClientID: "c2", AllocatedValue: dec("4000")},
				},
			},
			want: [5]string{"10000", "200", "50", "9.5", "40.5"},
		},
		{
			name: "roa mode with tagged decimals",
			offer: domain.Offer{
				RoaPercent:     domain.DecimalRate(dec("0.02")),
				RepassePercent: domain.DecimalRate(dec("0.25")),
				TaxPercent:     domain.DecimalRate(dec("0.19")),
				Allocations:    []domain.Allocation{{ClientID: "c1", AllocatedValue: dec("10000")}},
			},
			want: [5]string{"10000", "200", "50", "9.5", "40.5"},
		},
		{
			name: "fixed revenue ignores allocations for house revenue",
			offer: domain.Offer{
				CommissionMode: domain.CommissionFixedRevenue,
				FixedRevenue:   dec("1200"),
				RoaPercent:     domain.PercentRate(dec("3")),
				RepassePercent: domain.PercentRate(dec("50")),
				TaxPercent:     domain.PercentRate(dec("10")),
				Allocations:    []domain.Allocation{{ClientID: "c1", AllocatedValue: dec("10")}},
			},
			want: [5]string{"10", "1200", "600", "60", "540"},
		},
		{
			name: "cancelled allocations are excluded",
			offer: domain.Offer{
				RoaPercent:     domain.PercentRate(dec("1")),
				RepassePercent: domain.PercentRate(dec("100")),
				Allocations: []domain.Allocation{
					{ClientID: "c1", AllocatedValue: dec("1000")},
					{ClientID: "c2", AllocatedValue: dec("9000"), Status: domain.AllocationCancelled},
				},
			},
			want: [5]string{"1000", "10", "10", "0", "10"},
		},
		{
			name:  "empty offer",
			offer: domain.Offer{},
			want:  [5]string{"0", "0", "0", "0", "0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcOfferReservationTotals(tt.offer)
			assertDecimal(t, tt.want[0], got.TotalAllocated, "totalAllocated")
			assertDecimal(t, tt.want[1], got.RevenueHouse, "revenueHouse")
			assertDecimal(t, tt.want[2], got.AdvisorGross, "advisorGross")
			assertDecimal(t, tt.want[3], got.AdvisorTax, "advisorTax")
			assertDecimal(t, tt.want[4], got.AdvisorNet, "advisorNet")
		})
	}
}

func TestCalcOfferReservationTotals_StableAcrossNormalization(t *testing.T) {
	offer := domain.Offer{
		RoaPercent:     domain.Percent{Value: dec("2")},
		RepassePercent: domain.Percent{Value: dec("25")},
		TaxPercent:     domain.Percent{Value: dec("19")},
		Allocations:    []domain.Allocation{{ClientID: "c1", AllocatedValue: dec("10000")}},
	}
	before := CalcOfferReservationTotals(offer)
	after := CalcOfferReservationTotals(NormalizeOfferForPersistence(offer))
	assert.True(t, before.AdvisorNet.Equal(after.AdvisorNet))
	assert.True(t, before.RevenueHouse.Equal(after.RevenueHouse))
}
