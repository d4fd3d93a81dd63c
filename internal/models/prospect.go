package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prospect is a row of the prospects table.
type Prospect struct {
	ProspectID        string          `db:"prospect_id"`
	OwnerID           string          `db:"owner_id"`
	Name              string          `db:"name"`
	Email             string          `db:"email"`
	Phone             string          `db:"phone"`
	Origin            string          `db:"origin"`
	Status            string          `db:"status"`
	PotentialValue    decimal.Decimal `db:"potential_value"`
	PotentialType     string          `db:"potential_type"`
	Probability       int32           `db:"probability"`
	NextContactDate   *time.Time      `db:"next_contact_date"` // Nullable
	RealizedValue     decimal.Decimal `db:"realized_value"`
	RealizedType      string          `db:"realized_type"`
	RealizedDate      *time.Time      `db:"realized_date"` // Nullable
	Converted         bool            `db:"converted"`
	ConvertedClientID *string         `db:"converted_client_id"` // Nullable
	Notes             string          `db:"notes"`
	AuditFields
}
