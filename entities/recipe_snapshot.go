package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RecipeSnapshot is an immutable, content-hashed capture of a recipe at import
// time. Several snapshots can share a RecipeID; the newest one (by
// source_updated_at, then created_at) wins during resolution. Rows are never
// updated after creation.
type RecipeSnapshot struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID        uuid.UUID           `gorm:"uniqueIndex:uq_recipe_snapshot_recipe_hash" json:"recipe_id"`
	SnapshotHash    string              `gorm:"uniqueIndex:uq_recipe_snapshot_recipe_hash" json:"snapshot_hash"`
	Title           string              `gorm:"index" json:"title"`
	Category        *string             `json:"category,omitempty"`
	Portions        decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"portions"`
	SourceUpdatedAt *time.Time          `json:"source_updated_at,omitempty"`
	Payload         datatypes.JSONMap   `json:"payload"`
	CreatedAt       time.Time           `gorm:"type:timestamp" json:"created_at"`
}
