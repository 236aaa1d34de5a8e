package menu

import (
	"context"
	"time"

	"cookops-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		ActiveEntriesByDate(ctx context.Context, siteID uuid.UUID, serviceDate time.Time) ([]*entities.MenuEntry, error)
		LatestLegacyDate(ctx context.Context, siteID uuid.UUID) (*time.Time, error)
		ActiveLegacyEntries(ctx context.Context, siteID uuid.UUID, serviceDate time.Time) ([]*entities.MenuEntry, error)
		ReplaceEntries(ctx context.Context, siteID uuid.UUID, serviceDates []time.Time, entries []*entities.MenuEntry) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ActiveEntriesByDate(ctx context.Context, siteID uuid.UUID, serviceDate time.Time) ([]*entities.MenuEntry, error) {
	var entries []*entities.MenuEntry
	if err := r.db.WithContext(ctx).
		Where("site_id = ? AND service_date = ? AND is_active = ?", siteID, serviceDate, true).
		Order("space_key, sort_order, title").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *menuRepository) LatestLegacyDate(ctx context.Context, siteID uuid.UUID) (*time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).
		Model(&entities.MenuEntry{}).
		Where("site_id = ? AND is_active = ? AND space_key LIKE ?", siteID, true, LegacySpacePrefix+"%").
		Where("service_date <> ?", PermanentServiceDate).
		Order("service_date desc").
		Limit(1).
		Pluck("service_date", &dates).Error; err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}
	return &dates[0], nil
}

func (r *menuRepository) ActiveLegacyEntries(ctx context.Context, siteID uuid.UUID, serviceDate time.Time) ([]*entities.MenuEntry, error) {
	var entries []*entities.MenuEntry
	if err := r.db.WithContext(ctx).
		Where("site_id = ? AND service_date = ? AND is_active = ? AND space_key LIKE ?", siteID, serviceDate, true, LegacySpacePrefix+"%").
		Order("space_key, sort_order, title").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceEntries swaps the full entry set for the given (site, service date)
// keys in one transaction, so readers never observe a partially replaced set.
func (r *menuRepository) ReplaceEntries(ctx context.Context, siteID uuid.UUID, serviceDates []time.Time, entries []*entities.MenuEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("site_id = ? AND service_date IN ?", siteID, serviceDates).
			Delete(&entities.MenuEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(entries).Error
	})
}
