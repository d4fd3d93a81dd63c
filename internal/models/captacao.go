package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaptacaoLancamento is a row of the captacao_lancamentos table.
type CaptacaoLancamento struct {
	LancamentoID string          `db:"lancamento_id"`
	OwnerID      string          `db:"owner_id"`
	ClientID     *string         `db:"client_id"` // Nullable
	ClientName   string          `db:"client_name"`
	EntryDate    time.Time       `db:"entry_date"`
	Month        int32           `db:"month"`
	Year         int32           `db:"year"`
	Direction    string          `db:"direction"`
	EntryType    string          `db:"entry_type"`
	Value        decimal.Decimal `db:"value"`
	Origin       string          `db:"origin"`
	Description  string          `db:"description"`
	SourceRef    *string         `db:"source_ref"` // Nullable; unique per owner when set
	AuditFields
}
