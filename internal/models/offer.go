package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is a row of the offers table. Allocations and materials live in JSONB columns.
type Offer struct {
	OfferID            string          `db:"offer_id"`
	OwnerID            string          `db:"owner_id"`
	AssetName          string          `db:"asset_name"`
	AssetClass         string          `db:"asset_class"`
	OfferType          string          `db:"offer_type"`
	MinimumInvestment  decimal.Decimal `db:"minimum_investment"`
	CompetenceMonth    string          `db:"competence_month"`
	ReservationEndDate *time.Time      `db:"reservation_end_date"` // Nullable
	LiquidationDate    *time.Time      `db:"liquidation_date"`     // Nullable
	Status             string          `db:"status"`
	Audience           string          `db:"audience"`
	CommissionMode     string          `db:"commission_mode"`
	RoaPercent         decimal.Decimal `db:"roa_percent"` // stored as 0-1 decimals
	FixedRevenue       decimal.Decimal `db:"fixed_revenue"`
	RepassePercent     decimal.Decimal `db:"repasse_percent"`
	TaxPercent         decimal.Decimal `db:"tax_percent"`
	Allocations        []byte          `db:"allocations"`
	Materials          []byte          `db:"materials"`
	Notes              string          `db:"notes"`
	AuditFields
}

// Allocation is the JSONB shape of one offer allocation.
type Allocation struct {
	ClientID       string          `json:"clientId"`
	AllocatedValue decimal.Decimal `json:"allocatedValue"`
	BalanceOK      bool            `json:"balanceOk"`
	ReservedAt     string          `json:"reservedAt,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Status         string          `json:"status"`
}

// Material is the JSONB shape of one offer attachment.
type Material struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
