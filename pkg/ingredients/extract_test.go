package ingredients

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractIngredientsStrategies(t *testing.T) {
	row := map[string]interface{}{"name": "Farina", "quantity": 1.0, "unit": "kg"}

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{name: "top level list", payload: map[string]interface{}{"ingredients": []interface{}{row}}},
		{name: "under data", payload: map[string]interface{}{"data": map[string]interface{}{"ingredients": []interface{}{row}}}},
		{name: "under recipe", payload: map[string]interface{}{"recipe": map[string]interface{}{"ingredients": []interface{}{row}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractIngredients(tt.payload)
			assert.Len(t, result, 1)
			assert.Equal(t, "Farina", result[0].Name)
			assert.Equal(t, "kg", result[0].Unit)
		})
	}
}

func TestExtractIngredientsPrefersFirstNonEmptyList(t *testing.T) {
	payload := map[string]interface{}{
		"ingredients": []interface{}{},
		"data": map[string]interface{}{
			"ingredients": []interface{}{
				map[string]interface{}{"name": "Pomodoro", "qty": 2.0, "uom": "kg"},
			},
		},
	}

	result := ExtractIngredients(payload)
	assert.Len(t, result, 1)
	assert.Equal(t, "Pomodoro", result[0].Name)
}

func TestExtractIngredientsFieldAliases(t *testing.T) {
	payload := map[string]interface{}{
		"ingredients": []interface{}{
			map[string]interface{}{"ingredient": "Mozzarella", "amount": "250 g", "vendor": "Caseificio"},
			map[string]interface{}{"title": "Basilico", "value": 3.0},
			map[string]interface{}{"quantity": 1.0}, // nameless rows are dropped
			"not a map",
		},
	}

	result := ExtractIngredients(payload)
	assert.Len(t, result, 2)

	assert.Equal(t, "Mozzarella", result[0].Name)
	assert.True(t, result[0].Qty.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "g", result[0].Unit, "embedded unit wins when no unit field is present")
	assert.Equal(t, "Caseificio", result[0].Supplier)

	assert.Equal(t, "Basilico", result[1].Name)
	assert.Equal(t, UnitPc, result[1].Unit, "missing unit defaults to pc")
	assert.Empty(t, result[1].Supplier)
}

func TestExtractIngredientsUnitFieldBeatsEmbedded(t *testing.T) {
	payload := map[string]interface{}{
		"ingredients": []interface{}{
			map[string]interface{}{"name": "Olio", "quantity": "50 cl", "unit": "l"},
		},
	}

	result := ExtractIngredients(payload)
	assert.Len(t, result, 1)
	assert.Equal(t, "l", result[0].Unit)
	assert.True(t, result[0].Qty.Equal(decimal.NewFromInt(50)))
}

func TestExtractIngredientsEmptyPayload(t *testing.T) {
	assert.Empty(t, ExtractIngredients(map[string]interface{}{}))
	assert.Empty(t, ExtractIngredients(map[string]interface{}{"ingredients": "not a list"}))
}
