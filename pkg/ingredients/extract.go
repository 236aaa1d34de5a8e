package ingredients

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawIngredient is one ingredient row lifted out of a snapshot payload before
// unit normalization.
type RawIngredient struct {
	Name     string
	Qty      decimal.Decimal
	Unit     string
	Supplier string
}

// payloadStrategies locate the ingredient list inside historical payload
// shapes. They are tried in order and the first non-empty list wins.
var payloadStrategies = []func(payload map[string]interface{}) []interface{}{
	func(payload map[string]interface{}) []interface{} {
		return listValue(payload["ingredients"])
	},
	func(payload map[string]interface{}) []interface{} {
		return listValue(nestedValue(payload, "data", "ingredients"))
	},
	func(payload map[string]interface{}) []interface{} {
		return listValue(nestedValue(payload, "recipe", "ingredients"))
	},
}

func listValue(raw interface{}) []interface{} {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	return list
}

func nestedValue(payload map[string]interface{}, outer, inner string) interface{} {
	nested, ok := payload[outer].(map[string]interface{})
	if !ok {
		return nil
	}
	return nested[inner]
}

func firstString(item map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := item[key].(string); ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func firstValue(item map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if value, ok := item[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

// ExtractIngredients pulls the ingredient list out of a snapshot payload,
// resolving the aliased field names used by older exports. Rows without a
// name are dropped. An ingredient whose quantity embeds its unit ("130 g")
// is split; the embedded unit wins only when no unit field is present.
func ExtractIngredients(payload map[string]interface{}) []RawIngredient {
	var candidates []interface{}
	for _, strategy := range payloadStrategies {
		if found := strategy(payload); len(found) > 0 {
			candidates = found
			break
		}
	}

	result := make([]RawIngredient, 0, len(candidates))
	for _, candidate := range candidates {
		item, ok := candidate.(map[string]interface{})
		if !ok {
			continue
		}
		name := firstString(item, "name", "title", "ingredient", "product_name")
		if name == "" {
			continue
		}
		qty, embeddedUnit := ParseQty(firstValue(item, "quantity", "qty", "amount", "value"))
		unit := firstString(item, "unit", "uom", "qty_unit")
		if unit == "" {
			unit = embeddedUnit
		}
		if unit == "" {
			unit = UnitPc
		}
		result = append(result, RawIngredient{
			Name:     name,
			Qty:      qty,
			Unit:     unit,
			Supplier: firstString(item, "supplier", "supplier_name", "vendor"),
		})
	}
	return result
}
