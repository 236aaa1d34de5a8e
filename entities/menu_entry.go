package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// MenuEntry is one row of a site's service menu. Entries stored under the
// permanent sentinel date (1900-01-01) are always in play; dated entries only
// apply on their service date. Scheduling attributes (schedule_mode,
// valid_from, valid_to, weekdays) live in the Metadata bag and are decoded in
// pkg/menu.
type MenuEntry struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SiteID      uuid.UUID         `gorm:"index:idx_menu_entry_site_date" json:"site_id"`
	ServiceDate time.Time         `gorm:"type:date;index:idx_menu_entry_site_date" json:"service_date"`
	SpaceKey    string            `json:"space_key"`
	Section     *string           `json:"section,omitempty"`
	Title       string            `json:"title"`
	RecipeID    *uuid.UUID        `gorm:"index" json:"recipe_id,omitempty"`
	ExpectedQty decimal.Decimal   `gorm:"type:numeric(12,3);default:1" json:"expected_qty"`
	SortOrder   int               `gorm:"default:0" json:"sort_order"`
	IsActive    bool              `gorm:"default:true" json:"is_active"`
	Metadata    datatypes.JSONMap `json:"metadata"`

	Site *Site `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
