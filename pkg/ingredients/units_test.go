package ingredients

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseQty(t *testing.T) {
	tests := []struct {
		name     string
		raw      interface{}
		wantQty  string
		wantUnit string
	}{
		{name: "float", raw: 1.5, wantQty: "1.5", wantUnit: ""},
		{name: "plain string", raw: "2.250", wantQty: "2.25", wantUnit: ""},
		{name: "comma separator", raw: "1,5", wantQty: "1.5", wantUnit: ""},
		{name: "embedded unit", raw: "130 g", wantQty: "130", wantUnit: "g"},
		{name: "embedded unit comma", raw: "1,5 kg", wantQty: "1.5", wantUnit: "kg"},
		{name: "unparsable", raw: "a pinch of", wantQty: "0", wantUnit: ""},
		{name: "nil", raw: nil, wantQty: "0", wantUnit: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, unit := ParseQty(tt.raw)
			assert.True(t, qty.Equal(decimal.RequireFromString(tt.wantQty)), "qty = %s, want %s", qty, tt.wantQty)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestNormalizeQtyUnit(t *testing.T) {
	tests := []struct {
		name     string
		qty      string
		unit     string
		wantQty  string
		wantUnit string
	}{
		{name: "grams to kilograms", qty: "1000", unit: "g", wantQty: "1", wantUnit: "kg"},
		{name: "centiliters to liters", qty: "100", unit: "cl", wantQty: "1", wantUnit: "l"},
		{name: "milliliters to liters", qty: "500", unit: "ml", wantQty: "0.5", wantUnit: "l"},
		{name: "embedded grams", qty: "130", unit: "g", wantQty: "0.13", wantUnit: "kg"},
		{name: "kilograms unchanged", qty: "2", unit: "kg", wantQty: "2", wantUnit: "kg"},
		{name: "piece alias pz", qty: "3", unit: "pz", wantQty: "3", wantUnit: "pc"},
		{name: "piece alias pieces", qty: "3", unit: "Pieces", wantQty: "3", wantUnit: "pc"},
		{name: "unknown unit passes through", qty: "4", unit: "box", wantQty: "4", wantUnit: "box"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, unit := NormalizeQtyUnit(decimal.RequireFromString(tt.qty), tt.unit)
			assert.True(t, qty.Equal(decimal.RequireFromString(tt.wantQty)), "qty = %s, want %s", qty, tt.wantQty)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestNormalizeUom(t *testing.T) {
	assert.Equal(t, "kg", NormalizeUom(" KG "))
	assert.Equal(t, "cl", NormalizeUom("cl"))
	assert.Equal(t, "pc", NormalizeUom("pz"))
	assert.Equal(t, "pc", NormalizeUom("unknown"))
}
