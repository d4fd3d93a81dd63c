package domain

import "github.com/shopspring/decimal"

// ClientStatus is the relationship state of a client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ativo"
	ClientInactive ClientStatus = "inativo"
)

// Client is a customer of the advisor.
type Client struct {
	ClientID         string          `json:"id"`
	OwnerID          string          `json:"ownerId"`
	Name             string          `json:"name"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Origin           string          `json:"origin,omitempty"`
	Status           ClientStatus    `json:"status"`
	Custody          decimal.Decimal `json:"custody"`
	Notes            string          `json:"notes,omitempty"`
	SourceProspectID string          `json:"sourceProspectId,omitempty"`
	AuditFields
}
