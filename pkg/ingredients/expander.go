package ingredients

import (
	"context"
	"fmt"

	"cookops-backend/domain"
	"cookops-backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxExpansionDepth bounds recursion independently of the visited set, so
// expansion terminates even on malformed snapshot data.
const maxExpansionDepth = 6

type (
	// TitleResolver finds the newest snapshot whose title exactly matches an
	// ingredient name. Nested recipes are referenced by name only, never by a
	// stored id.
	TitleResolver interface {
		ResolveForIngredientTitle(ctx context.Context, title string) (*entities.RecipeSnapshot, error)
	}

	// Expander turns a recipe snapshot into leaf ingredient lines, recursing
	// through recipe-as-ingredient references. It is a pure pipeline stage:
	// lines and warnings are returned, never accumulated in shared state.
	Expander struct {
		resolver TitleResolver
	}
)

func NewExpander(resolver TitleResolver) *Expander {
	return &Expander{resolver: resolver}
}

// Expand resolves a snapshot into leaf lines scaled by multiplier. The
// visited set carries the recipe ids already being expanded along this path;
// it is copied on recursion so sibling branches stay independent.
func (e *Expander) Expand(
	ctx context.Context,
	snapshot *entities.RecipeSnapshot,
	multiplier decimal.Decimal,
	visited map[uuid.UUID]struct{},
	depth int,
	derivedFrom string,
) ([]domain.IngredientLine, []string) {
	raws := ExtractIngredients(snapshot.Payload)
	if len(raws) == 0 {
		return nil, nil
	}

	if depth > maxExpansionDepth {
		return nil, []string{fmt.Sprintf("'%s': ingredient expansion stopped, maximum nesting depth exceeded", snapshot.Title)}
	}

	var (
		expanded []domain.IngredientLine
		warnings []string
	)
	for _, raw := range raws {
		qtyTotal := raw.Qty.Mul(multiplier)
		supplier := raw.Supplier
		if supplier == "" {
			supplier = domain.UnknownSupplier
		}

		nested, err := e.resolver.ResolveForIngredientTitle(ctx, raw.Name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("'%s': nested recipe lookup failed, treated as plain ingredient", raw.Name))
			nested = nil
		}
		if nested != nil {
			if _, seen := visited[nested.RecipeID]; seen {
				warnings = append(warnings, fmt.Sprintf("cycle detected on nested recipe '%s', expansion skipped", raw.Name))
				nested = nil
			}
		}

		if nested != nil {
			nestedMultiplier := nestedServingMultiplier(nested, qtyTotal)
			if !qtyTotal.IsPositive() {
				warnings = append(warnings, fmt.Sprintf("'%s': nested recipe quantity not set, assumed one serving", raw.Name))
			}

			nestedVisited := make(map[uuid.UUID]struct{}, len(visited)+1)
			for id := range visited {
				nestedVisited[id] = struct{}{}
			}
			nestedVisited[nested.RecipeID] = struct{}{}

			childDerived := derivedFrom
			if childDerived == "" {
				childDerived = nested.Title
			}

			childLines, childWarnings := e.Expand(ctx, nested, nestedMultiplier, nestedVisited, depth+1, childDerived)
			warnings = append(warnings, childWarnings...)
			if len(childLines) > 0 {
				expanded = append(expanded, childLines...)
				continue
			}
		}

		qtyNormalized, unitNormalized := NormalizeQtyUnit(qtyTotal, raw.Unit)
		line := domain.IngredientLine{
			Ingredient: raw.Name,
			Supplier:   supplier,
			QtyTotal:   qtyNormalized,
			Unit:       unitNormalized,
			SourceType: domain.SourceTypeDirect,
		}
		if derivedFrom != "" {
			line.SourceType = domain.SourceTypeDerivedRecipe
			line.SourceRecipeTitle = derivedFrom
		}
		expanded = append(expanded, line)
	}
	return expanded, warnings
}

// nestedServingMultiplier scales a nested recipe so that qtyTotal servings of
// it are produced. A non-positive qtyTotal falls back to a single serving.
func nestedServingMultiplier(nested *entities.RecipeSnapshot, qtyTotal decimal.Decimal) decimal.Decimal {
	portions := decimal.Zero
	if nested.Portions.Valid && nested.Portions.Decimal.IsPositive() {
		portions = nested.Portions.Decimal
	}

	if qtyTotal.IsPositive() {
		if portions.IsPositive() {
			return qtyTotal.Div(portions)
		}
		return qtyTotal
	}
	if portions.IsPositive() {
		return decimal.NewFromInt(1).Div(portions)
	}
	return decimal.NewFromInt(1)
}
