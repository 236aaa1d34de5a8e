package ingredients

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	UnitKg = "kg"
	UnitL  = "l"
	UnitPc = "pc"
)

// embeddedQtyPattern matches quantity strings that carry their unit inline,
// e.g. "130 g" or "1,5 kg". Comma is accepted as decimal separator.
var embeddedQtyPattern = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)\s*([a-zA-Z]+)\s*$`)

var pieceAliases = map[string]bool{
	"pc":     true,
	"pz":     true,
	"piece":  true,
	"pieces": true,
	"unit":   true,
	"unite":  true,
	"unites": true,
	"units":  true,
}

// ParseQty converts a raw payload quantity into a decimal plus any unit token
// embedded in the value itself. It never fails: unparsable input yields zero
// and an empty unit.
func ParseQty(raw interface{}) (decimal.Decimal, string) {
	switch value := raw.(type) {
	case nil:
		return decimal.Zero, ""
	case float64:
		return decimal.NewFromFloat(value), ""
	case int:
		return decimal.NewFromInt(int64(value)), ""
	case int64:
		return decimal.NewFromInt(value), ""
	case decimal.Decimal:
		return value, ""
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return decimal.Zero, ""
		}
		if parsed, err := decimal.NewFromString(strings.ReplaceAll(trimmed, ",", ".")); err == nil {
			return parsed, ""
		}
		if match := embeddedQtyPattern.FindStringSubmatch(trimmed); match != nil {
			number := strings.ReplaceAll(match[1], ",", ".")
			parsed, err := decimal.NewFromString(number)
			if err != nil {
				return decimal.Zero, ""
			}
			return parsed, match[2]
		}
		return decimal.Zero, ""
	default:
		return decimal.Zero, ""
	}
}

// NormalizeUom maps a catalog unit-of-measure token onto the storage units
// kg/g/l/ml/cl/pc, defaulting to pc. Catalog rows must always carry a valid
// uom, unlike ingredient lines where unknown units pass through.
func NormalizeUom(unit string) string {
	cleaned := strings.ToLower(strings.TrimSpace(unit))
	switch {
	case cleaned == "kg" || cleaned == "g" || cleaned == "l" || cleaned == "ml" || cleaned == "cl":
		return cleaned
	case pieceAliases[cleaned]:
		return UnitPc
	default:
		return UnitPc
	}
}

// NormalizeQtyUnit converts a quantity into one of the canonical units kg, l
// or pc. Unrecognized units pass through unchanged rather than being coerced
// to a default.
func NormalizeQtyUnit(qty decimal.Decimal, unit string) (decimal.Decimal, string) {
	cleaned := strings.ToLower(strings.TrimSpace(unit))
	switch {
	case cleaned == "g":
		return qty.Div(decimal.NewFromInt(1000)), UnitKg
	case cleaned == "ml":
		return qty.Div(decimal.NewFromInt(1000)), UnitL
	case cleaned == "cl":
		return qty.Div(decimal.NewFromInt(100)), UnitL
	case cleaned == UnitKg:
		return qty, UnitKg
	case cleaned == UnitL:
		return qty, UnitL
	case pieceAliases[cleaned]:
		return qty, UnitPc
	default:
		return qty, strings.TrimSpace(unit)
	}
}
