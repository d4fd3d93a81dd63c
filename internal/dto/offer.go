package dto

import (
	"time"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/utils/offers"
	"github.com/shopspring/decimal"
)

// AllocationPayload is one client allocation as exchanged with the UI.
type AllocationPayload struct {
	ClientID       string          `json:"clientId"`
	AllocatedValue decimal.Decimal `json:"allocatedValue"`
	BalanceOK      bool            `json:"balanceOk"`
	ReservedAt     string          `json:"reservedAt,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Status         string          `json:"status,omitempty"`
}

// MaterialPayload is an attachment link.
type MaterialPayload struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// OfferRequest creates or replaces an offer. Percent fields accept either
// {"value":..,"unit":"percent|decimal"} or a bare number. Legacy fields are
// still accepted and folded during normalization.
type OfferRequest struct {
	AssetName          string              `json:"assetName" binding:"required"`
	AssetClass         string              `json:"assetClass"`
	OfferType          string              `json:"offerType"`
	MinimumInvestment  decimal.Decimal     `json:"minimumInvestment"`
	CompetenceMonth    string              `json:"competenceMonth"`
	ReservationEndDate string              `json:"reservationEndDate"`
	LiquidationDate    string              `json:"liquidationDate"`
	Status             string              `json:"status"`
	Audience           string              `json:"audience"`
	CommissionMode     string              `json:"commissionMode" binding:"omitempty,oneof=roa_percent fixed_revenue"`
	RoaPercent         domain.Percent      `json:"roaPercent"`
	FixedRevenue       decimal.Decimal     `json:"fixedRevenue"`
	RepassePercent     domain.Percent      `json:"repassePercent"`
	TaxPercent         domain.Percent      `json:"taxPercent"`
	Allocations        []AllocationPayload `json:"allocations"`
	Materials          []MaterialPayload   `json:"materials"`
	Notes              string              `json:"notes"`

	DataLiquidacao   string `json:"dataLiquidacao"`
	ReservaEfetuada  *bool  `json:"reservaEfetuada"`
	ReservaLiquidada *bool  `json:"reservaLiquidada"`

	Version *int64 `json:"version"` // Optional: enables the optimistic concurrency check
}

// ToDomain builds the raw (not yet normalized) offer of the request.
func (r OfferRequest) ToDomain() domain.Offer {
	allocations := make([]domain.Allocation, len(r.Allocations))
	for i, a := range r.Allocations {
		allocations[i] = domain.Allocation{
			ClientID:       a.ClientID,
			AllocatedValue: a.AllocatedValue,
			BalanceOK:      a.BalanceOK,
			ReservedAt:     a.ReservedAt,
			Notes:          a.Notes,
			Status:         domain.AllocationStatus(a.Status),
		}
	}
	materials := make([]domain.Material, len(r.Materials))
	for i, m := range r.Materials {
		materials[i] = domain.Material{Name: m.Name, URL: m.URL}
	}
	return domain.Offer{
		AssetName:             r.AssetName,
		AssetClass:            r.AssetClass,
		OfferType:             domain.OfferType(r.OfferType),
		MinimumInvestment:     r.MinimumInvestment,
		CompetenceMonth:       r.CompetenceMonth,
		ReservationEndDate:    r.ReservationEndDate,
		LiquidationDate:       r.LiquidationDate,
		Status:                domain.OfferStatus(r.Status),
		Audience:              domain.Audience(r.Audience),
		CommissionMode:        domain.CommissionMode(r.CommissionMode),
		RoaPercent:            r.RoaPercent,
		FixedRevenue:          r.FixedRevenue,
		RepassePercent:        r.RepassePercent,
		TaxPercent:            r.TaxPercent,
		Allocations:           allocations,
		Materials:             materials,
		Notes:                 r.Notes,
		LegacyLiquidationDate: r.DataLiquidacao,
		LegacyReserved:        r.ReservaEfetuada,
		LegacyLiquidated:      r.ReservaLiquidada,
	}
}

// ListOffersParams defines query parameters for listing offers.
type ListOffersParams struct {
	CompetenceMonth string `form:"competenceMonth" binding:"omitempty,yyyymm"`
	Status          string `form:"status"` // Optional: any spelling ParseOfferStatus understands
}

// ReservationRequest adds one client allocation to an offer.
type ReservationRequest struct {
	ClientID       string          `json:"clientId" binding:"required"`
	ReservedAmount decimal.Decimal `json:"reservedAmount"`
	ReservedAt     string          `json:"reservedAt" binding:"omitempty,isodate"`
	Notes          string          `json:"notes"`
}

// ToInput converts the request into the reservation engine input.
func (r ReservationRequest) ToInput() offers.ReservationInput {
	return offers.ReservationInput{
		ClientID:       r.ClientID,
		ReservedAmount: r.ReservedAmount,
		ReservedAt:     r.ReservedAt,
		Notes:          r.Notes,
	}
}

// OfferTotalsResponse is the commission breakdown of an offer.
type OfferTotalsResponse struct {
	TotalAllocated decimal.Decimal `json:"totalAllocated"`
	RevenueHouse   decimal.Decimal `json:"revenueHouse"`
	AdvisorGross   decimal.Decimal `json:"advisorGross"`
	AdvisorTax     decimal.Decimal `json:"advisorTax"`
	AdvisorNet     decimal.Decimal `json:"advisorNet"`
}

// OfferResponse defines the data returned for an offer.
type OfferResponse struct {
	OfferID            string                `json:"id"`
	AssetName          string                `json:"assetName"`
	AssetClass         string                `json:"assetClass"`
	OfferType          domain.OfferType      `json:"offerType"`
	MinimumInvestment  decimal.Decimal       `json:"minimumInvestment"`
	CompetenceMonth    string                `json:"competenceMonth"`
	ReservationEndDate string                `json:"reservationEndDate"`
	LiquidationDate    string                `json:"liquidationDate"`
	Status             domain.OfferStatus    `json:"status"`
	Audience           domain.Audience       `json:"audience"`
	CommissionMode     domain.CommissionMode `json:"commissionMode"`
	RoaPercent         domain.Percent        `json:"roaPercent"`
	FixedRevenue       decimal.Decimal       `json:"fixedRevenue"`
	RepassePercent     domain.Percent        `json:"repassePercent"`
	TaxPercent         domain.Percent        `json:"taxPercent"`
	Allocations        []AllocationPayload   `json:"allocations"`
	Materials          []MaterialPayload     `json:"materials"`
	Notes              string                `json:"notes"`
	Totals             OfferTotalsResponse   `json:"totals"`
	Version            int64                 `json:"version"`
	CreatedAt          time.Time             `json:"createdAt"`
	LastUpdatedAt      time.Time             `json:"lastUpdatedAt"`
}

// ReservationResponse reports the outcome of a reservation attempt.
type ReservationResponse struct {
	OK                bool           `json:"ok"`
	Reason            string         `json:"reason,omitempty"`
	DuplicateClientID string         `json:"duplicateClientId,omitempty"`
	Offer             *OfferResponse `json:"offer,omitempty"`
}

// ToOfferTotalsResponse converts domain totals to the response DTO.
func ToOfferTotalsResponse(t domain.OfferTotals) OfferTotalsResponse {
	return OfferTotalsResponse{
		TotalAllocated: t.TotalAllocated,
		RevenueHouse:   t.RevenueHouse,
		AdvisorGross:   t.AdvisorGross,
		AdvisorTax:     t.AdvisorTax,
		AdvisorNet:     t.AdvisorNet,
	}
}

// ToOfferResponse converts a domain.Offer to OfferResponse, computing its totals.
func ToOfferResponse(o *domain.Offer) OfferResponse {
	allocations := make([]AllocationPayload, len(o.Allocations))
	for i, a := range o.Allocations {
		allocations[i] = AllocationPayload{
			ClientID:       a.ClientID,
			AllocatedValue: a.AllocatedValue,
			BalanceOK:      a.BalanceOK,
			ReservedAt:     a.ReservedAt,
			Notes:          a.Notes,
			Status:         string(a.Status),
		}
	}
	materials := make([]MaterialPayload, len(o.Materials))
	for i, m := range o.Materials {
		materials[i] = MaterialPayload{Name: m.Name, URL: m.URL}
	}
	return OfferResponse{
		OfferID:            o.OfferID,
		AssetName:          o.AssetName,
		AssetClass:         o.AssetClass,
		OfferType:          o.OfferType,
		MinimumInvestment:  o.MinimumInvestment,
		CompetenceMonth:    o.CompetenceMonth,
		ReservationEndDate: o.ReservationEndDate,
		LiquidationDate:    o.LiquidationDate,
		Status:             o.Status,
		Audience:           o.Audience,
		CommissionMode:     o.CommissionMode,
		RoaPercent:         o.RoaPercent,
		FixedRevenue:       o.FixedRevenue,
		RepassePercent:     o.RepassePercent,
		TaxPercent:         o.TaxPercent,
		Allocations:        allocations,
		Materials:          materials,
		Notes:              o.Notes,
		Totals:             ToOfferTotalsResponse(offers.CalcOfferReservationTotals(*o)),
		Version:            o.Version,
		CreatedAt:          o.CreatedAt,
		LastUpdatedAt:      o.LastUpdatedAt,
	}
}

// ToListOfferResponse converts a slice of domain.Offer to OfferResponse DTOs.
func ToListOfferResponse(list []domain.Offer) []OfferResponse {
	res := make([]OfferResponse, len(list))
	for i := range list {
		res[i] = ToOfferResponse(&list[i])
	}
	return res
}

// ToReservationResponse converts an engine result to its response DTO.
func ToReservationResponse(r offers.ReservationResult) ReservationResponse {
	resp := ReservationResponse{
		OK:                r.OK,
		Reason:            string(r.Reason),
		DuplicateClientID: r.DuplicateClientID,
	}
	if r.Offer != nil {
		offer := ToOfferResponse(r.Offer)
		resp.Offer = &offer
	}
	return resp
}
