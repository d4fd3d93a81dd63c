package dto

import (
	"time"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClientRequest creates or replaces a client.
type ClientRequest struct {
	Name    string          `json:"name" binding:"required,max=200"`
	Email   string          `json:"email" binding:"omitempty,email"`
	Phone   string          `json:"phone"`
	Origin  string          `json:"origin"`
	Status  string          `json:"status" binding:"omitempty,oneof=ativo inativo"`
	Custody decimal.Decimal `json:"custody"`
	Notes   string          `json:"notes"`
	Version *int64          `json:"version"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID         string              `json:"id"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	Origin           string              `json:"origin"`
	Status           domain.ClientStatus `json:"status"`
	Custody          decimal.Decimal     `json:"custody"`
	Notes            string              `json:"notes"`
	SourceProspectID string              `json:"sourceProspectId,omitempty"`
	Version          int64               `json:"version"`
	CreatedAt        time.Time           `json:"createdAt"`
	LastUpdatedAt    time.Time           `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:         c.ClientID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Origin:           c.Origin,
		Status:           c.Status,
		Custody:          c.Custody,
		Notes:            c.Notes,
		SourceProspectID: c.SourceProspectID,
		Version:          c.Version,
		CreatedAt:        c.CreatedAt,
		LastUpdatedAt:    c.LastUpdatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
