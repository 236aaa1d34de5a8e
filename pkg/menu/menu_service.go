package menu

import (
	"context"
	"errors"
	"time"

	"cookops-backend/domain"
	"cookops-backend/entities"
	"cookops-backend/pkg/site"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		EffectiveEntries(ctx context.Context, siteID uuid.UUID, target time.Time) ([]*entities.MenuEntry, error)
		SyncEntries(ctx context.Context, req domain.MenuEntrySyncRequest) (domain.MenuEntrySyncResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
		siteRepository site.SiteRepository
	}
)

func NewMenuService(menuRepository MenuRepository, siteRepository site.SiteRepository) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		siteRepository: siteRepository,
	}
}

// EffectiveEntries resolves the ordered entry set in effect for (site, date).
// Pools are concatenated as permanent, legacy carta fallback (only when no
// permanent entries exist), then dated, each pool already ordered by
// (space_key, sort_order, title) and filtered by AppliesOn. Entries showing
// up in more than one pool are kept as-is, not de-duplicated.
func (s *menuService) EffectiveEntries(ctx context.Context, siteID uuid.UUID, target time.Time) ([]*entities.MenuEntry, error) {
	permanent, err := s.menuRepository.ActiveEntriesByDate(ctx, siteID, PermanentServiceDate)
	if err != nil {
		return nil, err
	}

	var legacy []*entities.MenuEntry
	if len(permanent) == 0 {
		latestLegacyDate, err := s.menuRepository.LatestLegacyDate(ctx, siteID)
		if err != nil {
			return nil, err
		}
		if latestLegacyDate != nil {
			legacy, err = s.menuRepository.ActiveLegacyEntries(ctx, siteID, *latestLegacyDate)
			if err != nil {
				return nil, err
			}
		}
	}

	dated, err := s.menuRepository.ActiveEntriesByDate(ctx, siteID, target)
	if err != nil {
		return nil, err
	}

	combined := make([]*entities.MenuEntry, 0, len(permanent)+len(legacy)+len(dated))
	for _, pool := range [][]*entities.MenuEntry{permanent, legacy, dated} {
		for _, entry := range pool {
			if AppliesOn(entry, target) {
				combined = append(combined, entry)
			}
		}
	}
	return combined, nil
}

// SyncEntries atomically replaces the entry sets keyed by the permanent
// sentinel and the submitted service date. Permanent and recurring entries
// are stored under the sentinel; date-specific entries under the submitted
// date. A missing schedule mode is inferred and persisted into the metadata
// bag so later resolution sees the same rule.
func (s *menuService) SyncEntries(ctx context.Context, req domain.MenuEntrySyncRequest) (domain.MenuEntrySyncResponse, error) {
	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		return domain.MenuEntrySyncResponse{}, domain.ErrParseUUID
	}
	serviceDate, err := ParseISODate(req.ServiceDate)
	if err != nil {
		return domain.MenuEntrySyncResponse{}, domain.ErrInvalidDate
	}
	if _, err := s.siteRepository.GetSiteByID(ctx, req.SiteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuEntrySyncResponse{}, domain.ErrSiteNotFound
		}
		return domain.MenuEntrySyncResponse{}, err
	}

	instances := make([]*entities.MenuEntry, 0, len(req.Entries))
	for _, item := range req.Entries {
		metadata := make(map[string]interface{}, len(item.Metadata)+1)
		for key, value := range item.Metadata {
			metadata[key] = value
		}

		mode := ""
		if raw, ok := metadata["schedule_mode"].(string); ok {
			candidate := normalizeMode(raw)
			if supportedScheduleModes[candidate] {
				mode = candidate
			}
		}
		if mode == "" {
			mode = domain.ScheduleDateSpecific
			if hasLegacyPrefix(item.SpaceKey) {
				mode = domain.SchedulePermanent
			}
			metadata["schedule_mode"] = mode
		}

		entryDate := serviceDate
		if mode == domain.SchedulePermanent || mode == domain.ScheduleRecurringWeekly {
			entryDate = PermanentServiceDate
		}

		entry := &entities.MenuEntry{
			ID:          uuid.New(),
			SiteID:      siteID,
			ServiceDate: entryDate,
			SpaceKey:    item.SpaceKey,
			Section:     item.Section,
			Title:       item.Title,
			ExpectedQty: item.ExpectedQty,
			SortOrder:   item.SortOrder,
			IsActive:    true,
			Metadata:    metadata,
		}
		if item.IsActive != nil {
			entry.IsActive = *item.IsActive
		}
		if item.RecipeID != nil {
			recipeID, err := uuid.Parse(*item.RecipeID)
			if err != nil {
				return domain.MenuEntrySyncResponse{}, domain.ErrParseUUID
			}
			entry.RecipeID = &recipeID
		}
		instances = append(instances, entry)
	}

	replaceKeys := []time.Time{PermanentServiceDate, serviceDate}
	if err := s.menuRepository.ReplaceEntries(ctx, siteID, replaceKeys, instances); err != nil {
		return domain.MenuEntrySyncResponse{}, err
	}

	effective, err := s.EffectiveEntries(ctx, siteID, serviceDate)
	if err != nil {
		return domain.MenuEntrySyncResponse{}, err
	}
	return domain.MenuEntrySyncResponse{
		Site:        siteID.String(),
		ServiceDate: req.ServiceDate,
		Count:       len(effective),
		Entries:     effective,
	}, nil
}
