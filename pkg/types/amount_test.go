package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountHolder struct {
	Price Amount `json:"price,omitzero"`
}

func TestAmountUnmarshalTolerance(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
		value float64
	}{
		{name: "number", raw: `{"price": 12.5}`, valid: true, value: 12.5},
		{name: "integer", raw: `{"price": 100}`, valid: true, value: 100},
		{name: "null", raw: `{"price": null}`},
		{name: "absent", raw: `{}`},
		{name: "numeric string", raw: `{"price": "100"}`},
		{name: "boolean", raw: `{"price": true}`},
		{name: "object", raw: `{"price": {"amount": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h amountHolder
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &h))
			assert.Equal(t, tt.valid, h.Price.Valid)
			assert.Equal(t, tt.value, h.Price.Value)
		})
	}
}

func TestAmountMarshalOmitsUnknown(t *testing.T) {
	out, err := json.Marshal(amountHolder{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))

	out, err = json.Marshal(amountHolder{Price: NewAmount(0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": 0}`, string(out))

	out, err = json.Marshal(amountHolder{Price: NewAmount(49.99)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": 49.99}`, string(out))
}

func TestAmountDecimalRoundTrip(t *testing.T) {
	assert.True(t, Amount{}.Decimal().IsZero())

	sum := NewAmount(0.1).Decimal().Mul(decimal.NewFromInt(3))
	got := AmountFromDecimal(sum)
	assert.True(t, got.Valid)
	assert.Equal(t, 0.3, got.Value)
}

func TestAmountFromDecimalKeepsSubCentPrecision(t *testing.T) {
	total := NewAmount(10.005).Decimal().Add(NewAmount(0.333).Decimal().Mul(decimal.NewFromInt(3)))
	assert.Equal(t, 11.004, AmountFromDecimal(total).Value)
}

func TestAmountPreservesUnknownValues(t *testing.T) {
	for _, raw := range []string{`{"price":"n/a"}`, `{"price":true}`, `{"price":{"amount":1}}`} {
		var h amountHolder
		require.NoError(t, json.Unmarshal([]byte(raw), &h))
		assert.False(t, h.Price.Valid)
		assert.True(t, h.Price.Decimal().IsZero())

		out, err := json.Marshal(h)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	}

	var h amountHolder
	require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &h))
	out, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}
