package types

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount is an optional currency amount. Values that are absent, null or not
// JSON numbers decode to an unknown amount instead of failing the document.
// Unknown non-null values keep their original JSON so rewriting a document
// does not alter them.
type Amount struct {
	Valid bool
	Value float64
	raw   json.RawMessage
}

// NewAmount returns a known amount.
func NewAmount(v float64) Amount {
	return Amount{Valid: true, Value: v}
}

// AmountFromDecimal returns d as a known amount without rounding.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return NewAmount(d.InexactFloat64())
}

// Decimal returns the amount as a decimal, zero when unknown.
func (a Amount) Decimal() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return decimal.NewFromFloat(a.Value)
}

// IsZero reports whether the amount is absent so `omitzero` drops it on write.
func (a Amount) IsZero() bool {
	return !a.Valid && a.raw == nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		if a.raw != nil {
			return a.raw, nil
		}
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(a.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil || trimmed[0] == '"' {
		a.raw = append(json.RawMessage(nil), trimmed...)
		return nil
	}
	v, err := n.Float64()
	if err != nil {
		a.raw = append(json.RawMessage(nil), trimmed...)
		return nil
	}
	*a = NewAmount(v)
	return nil
}
