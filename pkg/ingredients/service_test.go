package ingredients

import (
	"context"
	"strings"
	"testing"
	"time"

	"cookops-backend/domain"
	"cookops-backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMenuService struct {
	entries []*entities.MenuEntry
}

func (f *fakeMenuService) EffectiveEntries(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entities.MenuEntry, error) {
	return f.entries, nil
}

func (f *fakeMenuService) SyncEntries(_ context.Context, _ domain.MenuEntrySyncRequest) (domain.MenuEntrySyncResponse, error) {
	return domain.MenuEntrySyncResponse{}, nil
}

type fakeSnapshotService struct {
	byRecipeID map[uuid.UUID]*entities.RecipeSnapshot
	byTitle    map[string]*entities.RecipeSnapshot
}

func (f *fakeSnapshotService) ResolveForEntry(_ context.Context, entry *entities.MenuEntry) (*entities.RecipeSnapshot, error) {
	if entry.RecipeID != nil {
		if snap, ok := f.byRecipeID[*entry.RecipeID]; ok {
			return snap, nil
		}
	}
	return f.byTitle[strings.ToLower(entry.Title)], nil
}

func (f *fakeSnapshotService) ResolveForIngredientTitle(_ context.Context, title string) (*entities.RecipeSnapshot, error) {
	return f.byTitle[strings.ToLower(strings.TrimSpace(title))], nil
}

func (f *fakeSnapshotService) ImportEnvelope(_ context.Context, _ domain.SnapshotEnvelopeRequest) (domain.SnapshotImportResult, error) {
	return domain.SnapshotImportResult{}, nil
}

type fakeProductSource struct {
	products []*entities.SupplierProduct
}

func (f *fakeProductSource) ActiveProductsBySupplierNames(_ context.Context, _ []string) ([]*entities.SupplierProduct, error) {
	return f.products, nil
}

var _ ProductSource = (*fakeProductSource)(nil)

func menuEntryFor(snap *entities.RecipeSnapshot, expected string) *entities.MenuEntry {
	recipeID := snap.RecipeID
	return &entities.MenuEntry{
		ID:          uuid.New(),
		SpaceKey:    "cucina",
		Title:       snap.Title,
		RecipeID:    &recipeID,
		ExpectedQty: decimal.RequireFromString(expected),
	}
}

func TestAggregateSupplierView(t *testing.T) {
	snap := snapshotWith("Pizza Margherita", "4",
		map[string]interface{}{"name": "Farina", "quantity": 1.0, "unit": "kg", "supplier": "Molino"},
	)

	service := NewIngredientService(
		&fakeMenuService{entries: []*entities.MenuEntry{menuEntryFor(snap, "2")}},
		&fakeSnapshotService{
			byRecipeID: map[uuid.UUID]*entities.RecipeSnapshot{snap.RecipeID: snap},
			byTitle:    map[string]*entities.RecipeSnapshot{"pizza margherita": snap},
		},
		&fakeProductSource{products: []*entities.SupplierProduct{
			catalogProduct("Molino", "Farina", "F-001", true),
		}},
	)

	response, err := service.Aggregate(context.Background(), uuid.New(), time.Now(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewSupplier, response.View)
	assert.Empty(t, response.Warnings)

	rows, ok := response.Rows.([]domain.SupplierRow)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "Farina", rows[0].Ingredient)
	assert.Equal(t, "Molino", rows[0].Supplier)
	assert.Equal(t, "F-001", rows[0].SupplierCode)
	assert.True(t, rows[0].QtyTotal.Equal(decimal.RequireFromString("0.5")), "2 planned portions out of 4 halves the batch")
	assert.Equal(t, UnitKg, rows[0].Unit)
}

func TestAggregateRecipeView(t *testing.T) {
	snap := snapshotWith("Pizza Margherita", "4",
		map[string]interface{}{"name": "Farina", "quantity": 1.0, "unit": "kg"},
	)

	service := NewIngredientService(
		&fakeMenuService{entries: []*entities.MenuEntry{menuEntryFor(snap, "4")}},
		&fakeSnapshotService{byRecipeID: map[uuid.UUID]*entities.RecipeSnapshot{snap.RecipeID: snap}},
		&fakeProductSource{},
	)

	response, err := service.Aggregate(context.Background(), uuid.New(), time.Now(), domain.ViewRecipe)
	require.NoError(t, err)

	rows, ok := response.Rows.([]domain.RecipeRow)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pizza Margherita", rows[0].Title)
	require.Len(t, rows[0].Ingredients, 1)
	assert.True(t, rows[0].Ingredients[0].QtyTotal.Equal(decimal.NewFromInt(1)))
}

func TestAggregateUnresolvableEntryBecomesWarning(t *testing.T) {
	snap := snapshotWith("Pizza Margherita", "4",
		map[string]interface{}{"name": "Farina", "quantity": 1.0, "unit": "kg"},
	)
	orphan := &entities.MenuEntry{
		ID:          uuid.New(),
		SpaceKey:    "cucina",
		Title:       "Piatto Fantasma",
		ExpectedQty: decimal.NewFromInt(2),
	}

	service := NewIngredientService(
		&fakeMenuService{entries: []*entities.MenuEntry{orphan, menuEntryFor(snap, "4")}},
		&fakeSnapshotService{byRecipeID: map[uuid.UUID]*entities.RecipeSnapshot{snap.RecipeID: snap}},
		&fakeProductSource{},
	)

	response, err := service.Aggregate(context.Background(), uuid.New(), time.Now(), domain.ViewSupplier)
	require.NoError(t, err)

	require.Len(t, response.Warnings, 1)
	assert.Contains(t, response.Warnings[0], "Piatto Fantasma")

	rows := response.Rows.([]domain.SupplierRow)
	require.Len(t, rows, 1, "the resolvable entry still aggregates")
}

func TestAggregateSkipsEntriesWithoutTargetPortions(t *testing.T) {
	snap := snapshotWith("Pizza Margherita", "4",
		map[string]interface{}{"name": "Farina", "quantity": 1.0, "unit": "kg"},
	)
	entry := menuEntryFor(snap, "0")

	service := NewIngredientService(
		&fakeMenuService{entries: []*entities.MenuEntry{entry}},
		&fakeSnapshotService{byRecipeID: map[uuid.UUID]*entities.RecipeSnapshot{snap.RecipeID: snap}},
		&fakeProductSource{},
	)

	response, err := service.Aggregate(context.Background(), uuid.New(), time.Now(), domain.ViewSupplier)
	require.NoError(t, err)
	require.Len(t, response.Warnings, 1)
	assert.Contains(t, response.Warnings[0], "target portions")
	assert.Empty(t, response.Rows.([]domain.SupplierRow))
}

func TestAggregateEmptyMenu(t *testing.T) {
	service := NewIngredientService(&fakeMenuService{}, &fakeSnapshotService{}, &fakeProductSource{})

	response, err := service.Aggregate(context.Background(), uuid.New(), time.Now(), domain.ViewSupplier)
	require.NoError(t, err)
	require.Len(t, response.Warnings, 1)
	assert.Contains(t, response.Warnings[0], "no active menu entries")
}

func TestAggregateUnknownView(t *testing.T) {
	service := NewIngredientService(&fakeMenuService{}, &fakeSnapshotService{}, &fakeProductSource{})

	_, err := service.Aggregate(context.Background(), uuid.New(), time.Now(), "warehouse")
	assert.ErrorIs(t, err, domain.ErrUnknownView)
}
