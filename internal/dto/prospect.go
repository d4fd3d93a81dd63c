package dto

import (
	"time"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProspectRequest creates or replaces a prospect. Saving it with a won status
// converts the prospect into a client.
type ProspectRequest struct {
	Name            string          `json:"name" binding:"required,max=200"`
	Email           string          `json:"email" binding:"omitempty,email"`
	Phone           string          `json:"phone"`
	Origin          string          `json:"origin"`
	Status          string          `json:"status"`
	PotentialValue  decimal.Decimal `json:"potentialValue"`
	PotentialType   string          `json:"potentialType"`
	Probability     int             `json:"probability" binding:"min=0,max=100"`
	NextContactDate string          `json:"nextContactDate" binding:"omitempty,isodate"`
	RealizedValue   decimal.Decimal `json:"realizedValue"`
	RealizedType    string          `json:"realizedType"`
	RealizedDate    string          `json:"realizedDate" binding:"omitempty,isodate"`
	ClientID        string          `json:"clientId"` // Optional: existing client to link on conversion
	Notes           string          `json:"notes"`
	Version         *int64          `json:"version"`
}

// ProspectResponse defines the data returned for a prospect.
type ProspectResponse struct {
	ProspectID        string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Origin            string          `json:"origin"`
	Status            string          `json:"status"`
	PotentialValue    decimal.Decimal `json:"potentialValue"`
	PotentialType     string          `json:"potentialType"`
	Probability       int             `json:"probability"`
	NextContactDate   string          `json:"nextContactDate"`
	RealizedValue     decimal.Decimal `json:"realizedValue"`
	RealizedType      string          `json:"realizedType"`
	RealizedDate      string          `json:"realizedDate"`
	Converted         bool            `json:"converted"`
	ConvertedClientID string          `json:"convertedClientId,omitempty"`
	Notes             string          `json:"notes"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// ToProspectResponse converts a domain.Prospect to ProspectResponse DTO
func ToProspectResponse(p *domain.Prospect) ProspectResponse {
	return ProspectResponse{
		ProspectID:        p.ProspectID,
		Name:              p.Name,
		Email:             p.Email,
		Phone:             p.Phone,
		Origin:            p.Origin,
		Status:            p.Status,
		PotentialValue:    p.PotentialValue,
		PotentialType:     p.PotentialType,
		Probability:       p.Probability,
		NextContactDate:   p.NextContactDate,
		RealizedValue:     p.RealizedValue,
		RealizedType:      p.RealizedType,
		RealizedDate:      p.RealizedDate,
		Converted:         p.Converted,
		ConvertedClientID: p.ConvertedClientID,
		Notes:             p.Notes,
		Version:           p.Version,
		CreatedAt:         p.CreatedAt,
		LastUpdatedAt:     p.LastUpdatedAt,
	}
}

// ToListProspectResponse converts a slice of domain.Prospect to ProspectResponse DTOs
func ToListProspectResponse(list []domain.Prospect) []ProspectResponse {
	res := make([]ProspectResponse, len(list))
	for i := range list {
		res[i] = ToProspectResponse(&list[i])
	}
	return res
}
