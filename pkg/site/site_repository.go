package site

import (
	"context"
	"errors"

	"cookops-backend/entities"

	"gorm.io/gorm"
)

type (
	SiteRepository interface {
		GetSiteByID(ctx context.Context, id string) (*entities.Site, error)
		GetSites(ctx context.Context, includeInactive bool) ([]*entities.Site, error)
		CreateSite(ctx context.Context, site *entities.Site) error
		UpdateSite(ctx context.Context, site *entities.Site) error
		DeleteSite(ctx context.Context, id string) error
	}

	siteRepository struct {
		db *gorm.DB
	}
)

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) GetSiteByID(ctx context.Context, id string) (*entities.Site, error) {
	var site entities.Site
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) GetSites(ctx context.Context, includeInactive bool) ([]*entities.Site, error) {
	var sites []*entities.Site
	query := r.db.WithContext(ctx).Order("name")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

func (r *siteRepository) CreateSite(ctx context.Context, site *entities.Site) error {
	return r.db.WithContext(ctx).Create(site).Error
}

func (r *siteRepository) UpdateSite(ctx context.Context, site *entities.Site) error {
	return r.db.WithContext(ctx).Save(site).Error
}

func (r *siteRepository) DeleteSite(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Site{}).Error
}
