package domain

import "github.com/shopspring/decimal"

// OfferStatus is the lifecycle state of an offer reservation.
type OfferStatus string

const (
	OfferPending    OfferStatus = "pendente"
	OfferReserved   OfferStatus = "reservada"
	OfferLiquidated OfferStatus = "liquidada"
	OfferCancelled  OfferStatus = "cancelada"
)

// AllocationStatus is the state of a single client allocation.
type AllocationStatus string

const (
	AllocationReserved   AllocationStatus = "reservada"
	AllocationLiquidated AllocationStatus = "liquidada"
	AllocationCancelled  AllocationStatus = "cancelada"
)

// OfferType distinguishes private placements from public offerings.
type OfferType string

const (
	OfferPrivate OfferType = "privada"
	OfferPublic  OfferType = "publica"
)

// Audience restricts who may be allocated in the offer.
type Audience string

const (
	AudienceGeneral   Audience = "geral"
	AudienceQualified Audience = "qualificado"
)

// CommissionMode selects how house revenue is computed.
type CommissionMode string

const (
	CommissionROAPercent   CommissionMode = "roa_percent"
	CommissionFixedRevenue CommissionMode = "fixed_revenue"
)

// MaxOfferMaterials caps the attachments list of an offer.
const MaxOfferMaterials = 10

// Allocation is one client's reserved amount within an offer.
type Allocation struct {
	ClientID       string           `json:"clientId"`
	AllocatedValue decimal.Decimal  `json:"allocatedValue"`
	BalanceOK      bool             `json:"balanceOk"`
	ReservedAt     string           `json:"reservedAt,omitempty"` // YYYY-MM-DD
	Notes          string           `json:"notes,omitempty"`
	Status         AllocationStatus `json:"status"`
}

// Material is a named link attached to an offer (term sheet, prospectus...).
type Material struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Offer is an investment offer open for client allocations.
// Dates are YYYY-MM-DD strings, CompetenceMonth is YYYY-MM.
type Offer struct {
	OfferID            string          `json:"id"`
	OwnerID            string          `json:"ownerId"`
	AssetName          string          `json:"assetName"`
	AssetClass         string          `json:"assetClass"`
	OfferType          OfferType       `json:"offerType"`
	MinimumInvestment  decimal.Decimal `json:"minimumInvestment"`
	CompetenceMonth    string          `json:"competenceMonth"`
	ReservationEndDate string          `json:"reservationEndDate,omitempty"`
	LiquidationDate    string          `json:"liquidationDate,omitempty"`
	Status             OfferStatus     `json:"status"`
	Audience           Audience        `json:"audience"`
	CommissionMode     CommissionMode  `json:"commissionMode"`
	RoaPercent         Percent         `json:"roaPercent"`
	FixedRevenue       decimal.Decimal `json:"fixedRevenue"`
	RepassePercent     Percent         `json:"repassePercent"`
	TaxPercent         Percent         `json:"taxPercent"`
	Allocations        []Allocation    `json:"allocations"`
	Materials          []Material      `json:"materials"`
	Notes              string          `json:"notes,omitempty"`

	// Legacy fields still sent by older clients. Normalization folds them into the
	// canonical fields above and clears them.
	LegacyLiquidationDate string `json:"dataLiquidacao,omitempty"`
	LegacyReserved        *bool  `json:"reservaEfetuada,omitempty"`
	LegacyLiquidated      *bool  `json:"reservaLiquidada,omitempty"`

	AuditFields
}

// HasAllocationFor reports whether clientID already holds an allocation.
func (o *Offer) HasAllocationFor(clientID string) bool {
	for _, a := range o.Allocations {
		if a.ClientID == clientID {
			return true
		}
	}
	return false
}

// OfferTotals is the commission breakdown of an offer.
type OfferTotals struct {
	TotalAllocated decimal.Decimal `json:"totalAllocated"`
	RevenueHouse   decimal.Decimal `json:"revenueHouse"`
	AdvisorGross   decimal.Decimal `json:"advisorGross"`
	AdvisorTax     decimal.Decimal `json:"advisorTax"`
	AdvisorNet     decimal.Decimal `json:"advisorNet"`
}

// OfferFilter narrows offer listings.
type OfferFilter struct {
	CompetenceMonth string
	Status          OfferStatus
}
