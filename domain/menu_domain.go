package domain

import (
	"errors"

	"cookops-backend/entities"

	"github.com/shopspring/decimal"
)

const (
	SchedulePermanent       = "permanent"
	ScheduleDateSpecific    = "date_specific"
	ScheduleRecurringWeekly = "recurring_weekly"
)

var (
	MessageSuccessGetEntries  = "success get effective menu entries"
	MessageSuccessSyncEntries = "menu entries synced successfully"

	MessageFailedGetEntries  = "failed to get effective menu entries"
	MessageFailedSyncEntries = "failed to sync menu entries"

	ErrUnknownScheduleMode = errors.New("unknown schedule mode")
)

type (
	MenuEntryPayload struct {
		SpaceKey    string                 `json:"space_key" validate:"required"`
		Section     *string                `json:"section,omitempty"`
		Title       string                 `json:"title" validate:"required"`
		RecipeID    *string                `json:"recipe_id,omitempty" validate:"omitempty,uuid"`
		ExpectedQty decimal.Decimal        `json:"expected_qty"`
		SortOrder   int                    `json:"sort_order"`
		IsActive    *bool                  `json:"is_active,omitempty"`
		Metadata    map[string]interface{} `json:"metadata,omitempty"`
	}

	MenuEntrySyncRequest struct {
		SiteID      string             `json:"site_id" validate:"required,uuid"`
		ServiceDate string             `json:"service_date" validate:"required"`
		Entries     []MenuEntryPayload `json:"entries" validate:"required,dive"`
	}

	EffectiveEntriesResponse struct {
		Count   int                   `json:"count"`
		Entries []*entities.MenuEntry `json:"entries"`
	}

	MenuEntrySyncResponse struct {
		Site        string                `json:"site"`
		ServiceDate string                `json:"service_date"`
		Count       int                   `json:"count"`
		Entries     []*entities.MenuEntry `json:"entries"`
	}
)
