package ingredients

import (
	"fmt"
	"sort"

	"cookops-backend/domain"
	"cookops-backend/entities"

	"github.com/shopspring/decimal"
)

type supplierKey struct {
	Supplier          string
	Ingredient        string
	SupplierCode      string
	Unit              string
	SourceType        string
	SourceRecipeTitle string
}

// Aggregator collects expanded lines across all effective entries and
// projects them into the supplier view (grouped totals) and the recipe view
// (per-entry breakdown). Both views share one warnings list.
type Aggregator struct {
	supplierTotals map[supplierKey]decimal.Decimal
	recipeRows     []domain.RecipeRow
	warnings       []string
}

func NewAggregator() *Aggregator {
	return &Aggregator{supplierTotals: make(map[supplierKey]decimal.Decimal)}
}

func (a *Aggregator) Warn(format string, args ...interface{}) {
	a.warnings = append(a.warnings, fmt.Sprintf(format, args...))
}

func (a *Aggregator) WarnAll(warnings []string) {
	a.warnings = append(a.warnings, warnings...)
}

// AddEntry feeds one resolved entry and its leaf lines into both projections.
func (a *Aggregator) AddEntry(entry *entities.MenuEntry, snapshot *entities.RecipeSnapshot, lines []domain.IngredientLine) {
	for _, line := range lines {
		key := supplierKey{
			Supplier:          line.Supplier,
			Ingredient:        line.Ingredient,
			SupplierCode:      line.SupplierCode,
			Unit:              line.Unit,
			SourceType:        line.SourceType,
			SourceRecipeTitle: line.SourceRecipeTitle,
		}
		a.supplierTotals[key] = a.supplierTotals[key].Add(line.QtyTotal)
	}

	row := domain.RecipeRow{
		Space:       entry.SpaceKey,
		Section:     entry.Section,
		Title:       entry.Title,
		ExpectedQty: entry.ExpectedQty,
		Ingredients: lines,
	}
	if snapshot.Category != nil {
		row.Category = CanonicalCategory(*snapshot.Category)
	}
	if snapshot.Portions.Valid && snapshot.Portions.Decimal.IsPositive() {
		portions := snapshot.Portions.Decimal
		row.RecipePortions = &portions
	}
	a.recipeRows = append(a.recipeRows, row)
}

// SupplierRows returns the grouped totals ordered by (supplier, ingredient,
// code, source type, source recipe title).
func (a *Aggregator) SupplierRows() []domain.SupplierRow {
	rows := make([]domain.SupplierRow, 0, len(a.supplierTotals))
	for key, total := range a.supplierTotals {
		rows = append(rows, domain.SupplierRow{
			Supplier:          key.Supplier,
			Ingredient:        key.Ingredient,
			SupplierCode:      key.SupplierCode,
			QtyTotal:          total,
			Unit:              key.Unit,
			SourceType:        key.SourceType,
			SourceRecipeTitle: key.SourceRecipeTitle,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Supplier != rows[j].Supplier {
			return rows[i].Supplier < rows[j].Supplier
		}
		if rows[i].Ingredient != rows[j].Ingredient {
			return rows[i].Ingredient < rows[j].Ingredient
		}
		if rows[i].SupplierCode != rows[j].SupplierCode {
			return rows[i].SupplierCode < rows[j].SupplierCode
		}
		if rows[i].SourceType != rows[j].SourceType {
			return rows[i].SourceType < rows[j].SourceType
		}
		return rows[i].SourceRecipeTitle < rows[j].SourceRecipeTitle
	})
	return rows
}

func (a *Aggregator) RecipeRows() []domain.RecipeRow {
	if a.recipeRows == nil {
		return []domain.RecipeRow{}
	}
	return a.recipeRows
}

func (a *Aggregator) Warnings() []string {
	if a.warnings == nil {
		return []string{}
	}
	return a.warnings
}
