package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"cookops-backend/domain"
	"cookops-backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	SnapshotService interface {
		ResolveForEntry(ctx context.Context, entry *entities.MenuEntry) (*entities.RecipeSnapshot, error)
		ResolveForIngredientTitle(ctx context.Context, title string) (*entities.RecipeSnapshot, error)
		ImportEnvelope(ctx context.Context, req domain.SnapshotEnvelopeRequest) (domain.SnapshotImportResult, error)
	}

	snapshotService struct {
		snapshotRepository SnapshotRepository
	}
)

func NewSnapshotService(snapshotRepository SnapshotRepository) SnapshotService {
	return &snapshotService{snapshotRepository: snapshotRepository}
}

// ResolveForEntry finds the best snapshot for a menu entry: by recipe id
// first, then exact title match, then substring title match, newest first at
// every step.
func (s *snapshotService) ResolveForEntry(ctx context.Context, entry *entities.MenuEntry) (*entities.RecipeSnapshot, error) {
	if entry.RecipeID != nil {
		snapshot, err := s.snapshotRepository.LatestByRecipeID(ctx, *entry.RecipeID)
		if err != nil {
			return nil, err
		}
		if snapshot != nil {
			return snapshot, nil
		}
	}

	title := strings.TrimSpace(entry.Title)
	if title == "" {
		return nil, nil
	}
	snapshot, err := s.snapshotRepository.LatestByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		return snapshot, nil
	}
	return s.snapshotRepository.LatestByTitleContains(ctx, title)
}

// ResolveForIngredientTitle matches nested recipe references discovered
// during expansion. Only exact title matches count here; substring matching
// would turn common ingredient names into accidental recipes.
func (s *snapshotService) ResolveForIngredientTitle(ctx context.Context, title string) (*entities.RecipeSnapshot, error) {
	cleaned := strings.TrimSpace(title)
	if cleaned == "" {
		return nil, nil
	}
	return s.snapshotRepository.LatestByTitle(ctx, cleaned)
}

// ImportEnvelope ingests a recipe export envelope, creating a snapshot row
// only when the content hash for that recipe id is new. Each fiche is reduced
// to the fixed payload shape before hashing, so stray exporter fields never
// produce spurious new snapshots. Existing snapshots are never modified.
func (s *snapshotService) ImportEnvelope(ctx context.Context, req domain.SnapshotEnvelopeRequest) (domain.SnapshotImportResult, error) {
	result := domain.SnapshotImportResult{Examples: []string{}}

	if strings.TrimSpace(req.ExportVersion) != domain.SnapshotEnvelopeVersion {
		return result, domain.ErrUnsupportedEnvelope
	}
	if source := strings.TrimSpace(req.SourceApp); source != "" && source != domain.SnapshotSourceApp {
		return result, domain.ErrUnsupportedSource
	}

	result.TotalRead = len(req.Fiches)
	for _, item := range req.Fiches {
		fiche, ok := item.(map[string]interface{})
		if !ok {
			result.InvalidPayloads++
			continue
		}
		recipeID, err := uuid.Parse(strings.TrimSpace(stringField(fiche, "recipe_id")))
		if err != nil {
			result.InvalidIDs++
			continue
		}

		payload := NormalizeFichePayload(fiche)
		title := strings.TrimSpace(stringField(fiche, "title"))

		snapshot := &entities.RecipeSnapshot{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			SnapshotHash: PayloadHash(payload),
			Title:        title,
			Category:     optionalStringField(fiche, "category"),
			Portions:     parsePortions(fiche["portions"]),
			Payload:      payload,
		}
		if raw := stringField(fiche, "updated_at"); raw != "" {
			if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
				snapshot.SourceUpdatedAt = &parsed
			}
		}

		created, err := s.snapshotRepository.CreateIfNew(ctx, snapshot)
		if err != nil {
			return result, err
		}
		if created {
			result.Created++
			if len(result.Examples) < 5 {
				example := title
				if example == "" {
					example = recipeID.String()
				}
				result.Examples = append(result.Examples, example)
			}
		} else {
			result.SkippedExisting++
		}
	}
	return result, nil
}

// NormalizeFichePayload reduces a raw fiche to the stored payload shape: the
// known content fields with list fields defaulting to empty, everything else
// dropped. The hash is computed over this shape.
func NormalizeFichePayload(fiche map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"title":            stringField(fiche, "title"),
		"category":         fiche["category"],
		"portions":         fiche["portions"],
		"language":         fiche["language"],
		"allergens":        listOrEmpty(fiche["allergens"]),
		"ingredients":      listOrEmpty(fiche["ingredients"]),
		"procedure_steps":  listOrEmpty(fiche["procedure_steps"]),
		"haccp_profiles":   listOrEmpty(fiche["haccp_profiles"]),
		"storage_profiles": listOrEmpty(fiche["storage_profiles"]),
		"label_hints":      fiche["label_hints"],
		"warnings":         listOrEmpty(fiche["warnings"]),
	}
}

func stringField(fiche map[string]interface{}, key string) string {
	value, _ := fiche[key].(string)
	return value
}

func optionalStringField(fiche map[string]interface{}, key string) *string {
	value, ok := fiche[key].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func listOrEmpty(raw interface{}) []interface{} {
	if list, ok := raw.([]interface{}); ok {
		return list
	}
	return []interface{}{}
}

// PayloadHash is the content address of a snapshot payload. encoding/json
// serializes map keys in sorted order, so equal payloads hash equally.
func PayloadHash(payload map[string]interface{}) string {
	serialized, err := json.Marshal(payload)
	if err != nil {
		serialized = []byte{}
	}
	sum := sha256.Sum256(serialized)
	return hex.EncodeToString(sum[:])
}

func parsePortions(raw interface{}) decimal.NullDecimal {
	switch value := raw.(type) {
	case nil:
		return decimal.NullDecimal{}
	case float64:
		return decimal.NullDecimal{Decimal: decimal.NewFromFloat(value), Valid: true}
	case int:
		return decimal.NullDecimal{Decimal: decimal.NewFromInt(int64(value)), Valid: true}
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return decimal.NullDecimal{}
		}
		return decimal.NullDecimal{Decimal: parsed, Valid: true}
	default:
		return decimal.NullDecimal{}
	}
}
