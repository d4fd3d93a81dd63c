package domain

import (
	"github.com/guibecker772/advisor-control/internal/utils/textnorm"
	"github.com/shopspring/decimal"
)

// Prospect is a sales-pipeline lead. Status is free text (novo, qualificado,
// proposta, ganho, perdido...) and is only interpreted through IsWonStatus.
type Prospect struct {
	ProspectID        string          `json:"id"`
	OwnerID           string          `json:"ownerId"`
	Name              string          `json:"name"`
	Email             string          `json:"email,omitempty"`
	Phone             string          `json:"phone,omitempty"`
	Origin            string          `json:"origin,omitempty"`
	Status            string          `json:"status"`
	PotentialValue    decimal.Decimal `json:"potentialValue"`
	PotentialType     string          `json:"potentialType,omitempty"`
	Probability       int             `json:"probability"`
	NextContactDate   string          `json:"nextContactDate,omitempty"`
	RealizedValue     decimal.Decimal `json:"realizedValue"`
	RealizedType      string          `json:"realizedType,omitempty"`
	RealizedDate      string          `json:"realizedDate,omitempty"`
	Converted         bool            `json:"converted"`
	ConvertedClientID string          `json:"convertedClientId,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	AuditFields
}

var wonStatuses = []string{"won", "ganho", "closedwon", "closed_won"}

// IsWonStatus reports whether status marks a won deal.
func IsWonStatus(status string) bool {
	return textnorm.In(status, wonStatuses...)
}

// IsWon reports whether the prospect is in a won status.
func (p Prospect) IsWon() bool {
	return IsWonStatus(p.Status)
}

// ConversionGaps lists what is missing for a won prospect to be converted.
func (p Prospect) ConversionGaps() []string {
	var gaps []string
	if !p.RealizedValue.IsPositive() {
		gaps = append(gaps, "realizedValue must be greater than zero")
	}
	if p.RealizedDate == "" {
		gaps = append(gaps, "realizedDate is required")
	}
	return gaps
}

// ConversionTransition tells what a prospect save did to its conversion.
type ConversionTransition string

const (
	TransitionNone      ConversionTransition = ""
	TransitionConverted ConversionTransition = "converted"
	TransitionUpdated   ConversionTransition = "conversion_updated"
	TransitionReverted  ConversionTransition = "reverted"
)
