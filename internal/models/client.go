package models

import (
	"github.com/shopspring/decimal"
)

// Client is a row of the clients table.
type Client struct {
	ClientID         string          `db:"client_id"`
	OwnerID          string          `db:"owner_id"`
	Name             string          `db:"name"`
	Email            string          `db:"email"`
	Phone            string          `db:"phone"`
	Origin           string          `db:"origin"`
	Status           string          `db:"status"`
	Custody          decimal.Decimal `db:"custody"`
	Notes            string          `db:"notes"`
	SourceProspectID *string         `db:"source_prospect_id"` // Nullable
	AuditFields
}
