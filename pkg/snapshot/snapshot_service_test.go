package snapshot

import (
	"context"
	"strings"
	"testing"

	"cookops-backend/domain"
	"cookops-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotRepository struct {
	byRecipeID map[uuid.UUID]*entities.RecipeSnapshot
	byTitle    map[string]*entities.RecipeSnapshot
	byContains map[string]*entities.RecipeSnapshot
	stored     map[string]bool
}

func (f *fakeSnapshotRepository) LatestByRecipeID(_ context.Context, recipeID uuid.UUID) (*entities.RecipeSnapshot, error) {
	return f.byRecipeID[recipeID], nil
}

func (f *fakeSnapshotRepository) LatestByTitle(_ context.Context, title string) (*entities.RecipeSnapshot, error) {
	return f.byTitle[strings.ToLower(title)], nil
}

func (f *fakeSnapshotRepository) LatestByTitleContains(_ context.Context, title string) (*entities.RecipeSnapshot, error) {
	return f.byContains[strings.ToLower(title)], nil
}

func (f *fakeSnapshotRepository) CreateIfNew(_ context.Context, snapshot *entities.RecipeSnapshot) (bool, error) {
	if f.stored == nil {
		f.stored = make(map[string]bool)
	}
	key := snapshot.RecipeID.String() + "|" + snapshot.SnapshotHash
	if f.stored[key] {
		return false, nil
	}
	f.stored[key] = true
	return true, nil
}

func TestResolveForEntryPrefersRecipeID(t *testing.T) {
	recipeID := uuid.New()
	byID := &entities.RecipeSnapshot{ID: uuid.New(), RecipeID: recipeID, Title: "Pizza Margherita"}
	byTitle := &entities.RecipeSnapshot{ID: uuid.New(), RecipeID: uuid.New(), Title: "Pizza Margherita"}

	service := NewSnapshotService(&fakeSnapshotRepository{
		byRecipeID: map[uuid.UUID]*entities.RecipeSnapshot{recipeID: byID},
		byTitle:    map[string]*entities.RecipeSnapshot{"pizza margherita": byTitle},
	})

	resolved, err := service.ResolveForEntry(context.Background(), &entities.MenuEntry{RecipeID: &recipeID, Title: "Pizza Margherita"})
	require.NoError(t, err)
	assert.Equal(t, byID, resolved)
}

func TestResolveForEntryFallsBackToTitle(t *testing.T) {
	staleID := uuid.New()
	exact := &entities.RecipeSnapshot{ID: uuid.New(), RecipeID: uuid.New(), Title: "Pizza Margherita"}
	fuzzy := &entities.RecipeSnapshot{ID: uuid.New(), RecipeID: uuid.New(), Title: "Pizza Margherita DOP"}

	repo := &fakeSnapshotRepository{
		byTitle:    map[string]*entities.RecipeSnapshot{"pizza margherita": exact},
		byContains: map[string]*entities.RecipeSnapshot{"margherita": fuzzy},
	}
	service := NewSnapshotService(repo)

	// stale recipe id falls through to exact title
	resolved, err := service.ResolveForEntry(context.Background(), &entities.MenuEntry{RecipeID: &staleID, Title: "Pizza Margherita"})
	require.NoError(t, err)
	assert.Equal(t, exact, resolved)

	// no exact title falls through to substring
	resolved, err = service.ResolveForEntry(context.Background(), &entities.MenuEntry{Title: "Margherita"})
	require.NoError(t, err)
	assert.Equal(t, fuzzy, resolved)

	// blank titles never match anything
	resolved, err = service.ResolveForEntry(context.Background(), &entities.MenuEntry{Title: "   "})
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolveForIngredientTitleMatchesExactOnly(t *testing.T) {
	exact := &entities.RecipeSnapshot{ID: uuid.New(), RecipeID: uuid.New(), Title: "Salsa Base"}
	repo := &fakeSnapshotRepository{
		byTitle:    map[string]*entities.RecipeSnapshot{"salsa base": exact},
		byContains: map[string]*entities.RecipeSnapshot{"salsa": exact},
	}
	service := NewSnapshotService(repo)

	resolved, err := service.ResolveForIngredientTitle(context.Background(), " Salsa Base ")
	require.NoError(t, err)
	assert.Equal(t, exact, resolved)

	resolved, err = service.ResolveForIngredientTitle(context.Background(), "Salsa")
	require.NoError(t, err)
	assert.Nil(t, resolved, "substring matches are menu-entry only")
}

func ficheOf(recipeID, title string, ingredients []interface{}) map[string]interface{} {
	return map[string]interface{}{
		"recipe_id":   recipeID,
		"title":       title,
		"portions":    4.0,
		"ingredients": ingredients,
	}
}

func TestImportEnvelopeRejectsUnknownFormats(t *testing.T) {
	service := NewSnapshotService(&fakeSnapshotRepository{})

	_, err := service.ImportEnvelope(context.Background(), domain.SnapshotEnvelopeRequest{ExportVersion: "1.0"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedEnvelope)

	_, err = service.ImportEnvelope(context.Background(), domain.SnapshotEnvelopeRequest{
		ExportVersion: domain.SnapshotEnvelopeVersion,
		SourceApp:     "spreadsheet-export",
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
}

func TestImportEnvelopeCountsAndDeduplicates(t *testing.T) {
	repo := &fakeSnapshotRepository{}
	service := NewSnapshotService(repo)

	ingredients := []interface{}{
		map[string]interface{}{"name": "Farina", "quantity": 1.0, "unit": "kg"},
	}
	recipeID := uuid.New().String()
	request := domain.SnapshotEnvelopeRequest{
		ExportVersion: domain.SnapshotEnvelopeVersion,
		SourceApp:     domain.SnapshotSourceApp,
		Fiches: []interface{}{
			ficheOf(recipeID, "Pizza Margherita", ingredients),
			ficheOf("not-a-uuid", "Rotta", ingredients),
			"not an object",
		},
	}

	result, err := service.ImportEnvelope(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRead)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.InvalidIDs)
	assert.Equal(t, 1, result.InvalidPayloads)
	assert.Equal(t, []string{"Pizza Margherita"}, result.Examples)

	// re-importing the identical fiche is a no-op
	result, err = service.ImportEnvelope(context.Background(), domain.SnapshotEnvelopeRequest{
		ExportVersion: domain.SnapshotEnvelopeVersion,
		Fiches:        []interface{}{ficheOf(recipeID, "Pizza Margherita", ingredients)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.SkippedExisting)

	// changed content for the same recipe creates a new snapshot
	changed := []interface{}{
		map[string]interface{}{"name": "Farina", "quantity": 2.0, "unit": "kg"},
	}
	result, err = service.ImportEnvelope(context.Background(), domain.SnapshotEnvelopeRequest{
		ExportVersion: domain.SnapshotEnvelopeVersion,
		Fiches:        []interface{}{ficheOf(recipeID, "Pizza Margherita", changed)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
}

func TestImportEnvelopeHashIgnoresUnknownFields(t *testing.T) {
	repo := &fakeSnapshotRepository{}
	service := NewSnapshotService(repo)

	ingredients := []interface{}{
		map[string]interface{}{"name": "Farina", "quantity": 1.0, "unit": "kg"},
	}
	recipeID := uuid.New().String()

	result, err := service.ImportEnvelope(context.Background(), domain.SnapshotEnvelopeRequest{
		ExportVersion: domain.SnapshotEnvelopeVersion,
		Fiches:        []interface{}{ficheOf(recipeID, "Pizza Margherita", ingredients)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Created)

	// exporter-internal fields are dropped by normalization, so the hash is
	// unchanged and nothing new is created
	decorated := ficheOf(recipeID, "Pizza Margherita", ingredients)
	decorated["exported_by"] = "admin"
	decorated["export_batch"] = 42.0

	result, err = service.ImportEnvelope(context.Background(), domain.SnapshotEnvelopeRequest{
		ExportVersion: domain.SnapshotEnvelopeVersion,
		Fiches:        []interface{}{decorated},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.SkippedExisting)
}

func TestNormalizeFichePayload(t *testing.T) {
	payload := NormalizeFichePayload(map[string]interface{}{
		"recipe_id": uuid.New().String(),
		"title":     "Pizza Margherita",
		"portions":  4.0,
		"ingredients": []interface{}{
			map[string]interface{}{"name": "Farina", "quantity": 1.0, "unit": "kg"},
		},
		"exported_by": "admin",
	})

	assert.Equal(t, "Pizza Margherita", payload["title"])
	assert.Len(t, payload["ingredients"], 1)
	assert.Equal(t, []interface{}{}, payload["allergens"], "missing lists default to empty")
	assert.NotContains(t, payload, "exported_by")
	assert.NotContains(t, payload, "recipe_id")
}

func TestPayloadHashIsStable(t *testing.T) {
	a := map[string]interface{}{"title": "Pizza", "portions": 4.0}
	b := map[string]interface{}{"portions": 4.0, "title": "Pizza"}

	assert.Equal(t, PayloadHash(a), PayloadHash(b), "key order does not change the hash")
	assert.NotEqual(t, PayloadHash(a), PayloadHash(map[string]interface{}{"title": "Pizza", "portions": 6.0}))
}
