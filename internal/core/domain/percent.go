package domain

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PercentUnit tags how a stored rate should be read.
type PercentUnit string

const (
	UnitDecimal PercentUnit = "decimal" // 0.25 means 25%
	UnitPercent PercentUnit = "percent" // 25 means 25%
)

var one = decimal.NewFromInt(1)

// Percent is a rate with an explicit unit. Values without a unit come from legacy
// payloads and are resolved by magnitude: anything above 1 is read as a percent.
type Percent struct {
	Value decimal.Decimal `json:"value"`
	Unit  PercentUnit     `json:"unit,omitempty"`
}

// DecimalRate builds a rate already in 0-1 form.
func DecimalRate(d decimal.Decimal) Percent {
	return Percent{Value: d, Unit: UnitDecimal}
}

// PercentRate builds a rate in 0-100 form.
func PercentRate(p decimal.Decimal) Percent {
	return Percent{Value: p, Unit: UnitPercent}
}

// ToDecimalFromPercent converts 25 into 0.25.
func ToDecimalFromPercent(p decimal.Decimal) decimal.Decimal {
	return p.Shift(-2)
}

// ToPercentDisplay converts 0.25 into 25.
func ToPercentDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2)
}

// Decimal resolves the rate to its 0-1 form.
func (p Percent) Decimal() decimal.Decimal {
	switch p.Unit {
	case UnitDecimal:
		return p.Value
	case UnitPercent:
		return ToDecimalFromPercent(p.Value)
	}
	if p.Value.GreaterThan(one) {
		return ToDecimalFromPercent(p.Value)
	}
	return p.Value
}

// Display resolves the rate to its 0-100 form.
func (p Percent) Display() decimal.Decimal {
	return ToPercentDisplay(p.Decimal())
}

// Normalized returns the rate tagged as decimal, negative values clamped to zero.
func (p Percent) Normalized() Percent {
	d := p.Decimal()
	if d.IsNegative() {
		d = decimal.Zero
	}
	return DecimalRate(d)
}

// UnmarshalJSON accepts either {"value":..,"unit":..} or a bare number / numeric string.
func (p *Percent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = Percent{}
		return nil
	}
	if trimmed[0] == '{' {
		type plain Percent
		var v plain
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return err
		}
		*p = Percent(v)
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	*p = Percent{Value: d}
	return nil
}
