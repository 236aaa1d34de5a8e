package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	ViewSupplier = "supplier"
	ViewRecipe   = "recipe"

	SourceTypeDirect        = "direct"
	SourceTypeDerivedRecipe = "derived_recipe"

	// UnknownSupplier labels leaf lines whose source ingredient carries no
	// supplier reference, so they still aggregate into a procurement row.
	UnknownSupplier = "No supplier"
)

var (
	MessageSuccessAggregation = "success get ingredient aggregation"

	MessageFailedAggregation = "failed to get ingredient aggregation"

	ErrUnknownView = errors.New("query param 'view' must be 'supplier' or 'recipe'")
)

type (
	// IngredientLine is a fully expanded leaf: canonical unit, supplier and
	// procurement code resolved, ready for aggregation.
	IngredientLine struct {
		Ingredient        string          `json:"ingredient"`
		Supplier          string          `json:"supplier"`
		SupplierCode      string          `json:"supplier_code,omitempty"`
		QtyTotal          decimal.Decimal `json:"qty_total"`
		Unit              string          `json:"unit"`
		SourceType        string          `json:"source_type"`
		SourceRecipeTitle string          `json:"source_recipe_title,omitempty"`
	}

	SupplierRow struct {
		Supplier          string          `json:"supplier"`
		Ingredient        string          `json:"ingredient"`
		SupplierCode      string          `json:"supplier_code,omitempty"`
		QtyTotal          decimal.Decimal `json:"qty_total"`
		Unit              string          `json:"unit"`
		SourceType        string          `json:"source_type"`
		SourceRecipeTitle string          `json:"source_recipe_title,omitempty"`
	}

	RecipeRow struct {
		Space          string           `json:"space"`
		Section        *string          `json:"section,omitempty"`
		Title          string           `json:"title"`
		Category       string           `json:"category,omitempty"`
		ExpectedQty    decimal.Decimal  `json:"expected_qty"`
		RecipePortions *decimal.Decimal `json:"recipe_portions,omitempty"`
		Ingredients    []IngredientLine `json:"ingredients"`
	}

	// AggregationResponse carries either supplier rows or recipe rows in Rows
	// depending on View.
	AggregationResponse struct {
		View     string      `json:"view"`
		Rows     interface{} `json:"rows"`
		Warnings []string    `json:"warnings"`
	}
)
