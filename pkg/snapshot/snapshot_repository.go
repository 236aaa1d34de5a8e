package snapshot

import (
	"context"
	"errors"
	"strings"

	"cookops-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recencyOrder picks the newest snapshot first; snapshots without a source
// timestamp sort after those that have one.
const recencyOrder = "source_updated_at DESC NULLS LAST, created_at DESC"

type (
	SnapshotRepository interface {
		LatestByRecipeID(ctx context.Context, recipeID uuid.UUID) (*entities.RecipeSnapshot, error)
		LatestByTitle(ctx context.Context, title string) (*entities.RecipeSnapshot, error)
		LatestByTitleContains(ctx context.Context, title string) (*entities.RecipeSnapshot, error)
		CreateIfNew(ctx context.Context, snapshot *entities.RecipeSnapshot) (bool, error)
	}

	snapshotRepository struct {
		db *gorm.DB
	}
)

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) latest(ctx context.Context, conds ...interface{}) (*entities.RecipeSnapshot, error) {
	var snapshot entities.RecipeSnapshot
	err := r.db.WithContext(ctx).
		Where(conds[0], conds[1:]...).
		Order(recencyOrder).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

func (r *snapshotRepository) LatestByRecipeID(ctx context.Context, recipeID uuid.UUID) (*entities.RecipeSnapshot, error) {
	return r.latest(ctx, "recipe_id = ?", recipeID)
}

func (r *snapshotRepository) LatestByTitle(ctx context.Context, title string) (*entities.RecipeSnapshot, error) {
	return r.latest(ctx, "LOWER(title) = LOWER(?)", title)
}

func (r *snapshotRepository) LatestByTitleContains(ctx context.Context, title string) (*entities.RecipeSnapshot, error) {
	return r.latest(ctx, "title ILIKE ?", "%"+escapeLikePattern(title)+"%")
}

// escapeLikePattern neutralizes LIKE metacharacters so a title such as
// "100% Integrale" matches literally instead of acting as a wildcard.
func escapeLikePattern(raw string) string {
	escaped := strings.ReplaceAll(raw, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "%", `\%`)
	return strings.ReplaceAll(escaped, "_", `\_`)
}

// CreateIfNew inserts the snapshot unless one with the same (recipe_id,
// snapshot_hash) already exists. Snapshots are immutable, so an existing row
// is never touched. Returns whether a row was created.
func (r *snapshotRepository) CreateIfNew(ctx context.Context, snapshot *entities.RecipeSnapshot) (bool, error) {
	var existing entities.RecipeSnapshot
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND snapshot_hash = ?", snapshot.RecipeID, snapshot.SnapshotHash).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return false, err
	}
	return true, nil
}
