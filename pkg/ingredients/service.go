package ingredients

import (
	"context"
	"time"

	"cookops-backend/domain"
	"cookops-backend/entities"
	"cookops-backend/pkg/menu"
	"cookops-backend/pkg/snapshot"

	"github.com/google/uuid"
)

type (
	IngredientService interface {
		Aggregate(ctx context.Context, siteID uuid.UUID, target time.Time, view string) (domain.AggregationResponse, error)
	}

	// ProductSource is the slice of the supplier catalog the pipeline needs
	// for code matching. The catalog repository satisfies it.
	ProductSource interface {
		ActiveProductsBySupplierNames(ctx context.Context, names []string) ([]*entities.SupplierProduct, error)
	}

	ingredientService struct {
		menuService     menu.MenuService
		snapshotService snapshot.SnapshotService
		products        ProductSource
		expander        *Expander
	}

	expandedEntry struct {
		entry    *entities.MenuEntry
		snapshot *entities.RecipeSnapshot
		lines    []domain.IngredientLine
	}
)

func NewIngredientService(
	menuService menu.MenuService,
	snapshotService snapshot.SnapshotService,
	products ProductSource,
) IngredientService {
	return &ingredientService{
		menuService:     menuService,
		snapshotService: snapshotService,
		products:        products,
		expander:        NewExpander(snapshotService),
	}
}

// Aggregate runs the full pipeline for (site, date): schedule resolution,
// snapshot resolution, recursive expansion, supplier-code matching and the
// requested projection. Data-quality problems become warnings; one bad entry
// never blocks the aggregation of the others.
func (s *ingredientService) Aggregate(ctx context.Context, siteID uuid.UUID, target time.Time, view string) (domain.AggregationResponse, error) {
	if view == "" {
		view = domain.ViewSupplier
	}
	if view != domain.ViewSupplier && view != domain.ViewRecipe {
		return domain.AggregationResponse{}, domain.ErrUnknownView
	}

	entries, err := s.menuService.EffectiveEntries(ctx, siteID, target)
	if err != nil {
		return domain.AggregationResponse{}, err
	}

	agg := NewAggregator()
	if len(entries) == 0 {
		agg.Warn("no active menu entries for the selected site and date")
		return s.project(agg, view), nil
	}

	var resolved []expandedEntry
	for _, entry := range entries {
		snap, err := s.snapshotService.ResolveForEntry(ctx, entry)
		if err != nil {
			return domain.AggregationResponse{}, err
		}
		if snap == nil {
			agg.Warn("'%s': no imported recipe snapshot found (id/title)", entry.Title)
			continue
		}

		planned := entry.ExpectedQty
		if !planned.IsPositive() {
			agg.Warn("'%s': target portions not set (> 0)", entry.Title)
			continue
		}

		multiplier := planned
		if snap.Portions.Valid && snap.Portions.Decimal.IsPositive() {
			multiplier = planned.Div(snap.Portions.Decimal)
		}

		visited := map[uuid.UUID]struct{}{}
		if snap.RecipeID != uuid.Nil {
			visited[snap.RecipeID] = struct{}{}
		}
		lines, warnings := s.expander.Expand(ctx, snap, multiplier, visited, 0, "")
		agg.WarnAll(warnings)
		if len(lines) == 0 {
			agg.Warn("'%s': no ingredients in snapshot payload", entry.Title)
			continue
		}
		resolved = append(resolved, expandedEntry{entry: entry, snapshot: snap, lines: lines})
	}

	matcher, err := s.buildMatcher(ctx, resolved)
	if err != nil {
		return domain.AggregationResponse{}, err
	}
	for _, item := range resolved {
		for i := range item.lines {
			item.lines[i].SupplierCode = matcher.Resolve(item.lines[i].Supplier, item.lines[i].Ingredient)
		}
		agg.AddEntry(item.entry, item.snapshot, item.lines)
	}
	return s.project(agg, view), nil
}

func (s *ingredientService) buildMatcher(ctx context.Context, resolved []expandedEntry) (*CodeMatcher, error) {
	supplierNames := make(map[string]bool)
	var allLines []domain.IngredientLine
	for _, item := range resolved {
		for _, line := range item.lines {
			supplierNames[line.Supplier] = true
			allLines = append(allLines, line)
		}
	}

	names := make([]string, 0, len(supplierNames))
	for name := range supplierNames {
		names = append(names, name)
	}
	products, err := s.products.ActiveProductsBySupplierNames(ctx, names)
	if err != nil {
		return nil, err
	}
	return NewCodeMatcher(allLines, products), nil
}

func (s *ingredientService) project(agg *Aggregator, view string) domain.AggregationResponse {
	response := domain.AggregationResponse{View: view, Warnings: agg.Warnings()}
	if view == domain.ViewRecipe {
		response.Rows = agg.RecipeRows()
		return response
	}
	response.Rows = agg.SupplierRows()
	return response
}
