package site

import (
	"context"
	"errors"

	"cookops-backend/domain"
	"cookops-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SiteService interface {
		GetSiteByID(ctx context.Context, id string) (*entities.Site, error)
		GetSites(ctx context.Context, includeInactive bool) ([]*entities.Site, error)
		CreateSite(ctx context.Context, req domain.SiteCreateRequest) (*entities.Site, error)
		UpdateSite(ctx context.Context, id string, req domain.SiteUpdateRequest) (*entities.Site, error)
		DeleteSite(ctx context.Context, id string, req domain.SiteDeleteRequest) error
	}

	siteService struct {
		siteRepository SiteRepository
	}
)

func NewSiteService(siteRepository SiteRepository) SiteService {
	return &siteService{siteRepository: siteRepository}
}

func (s *siteService) GetSiteByID(ctx context.Context, id string) (*entities.Site, error) {
	site, err := s.siteRepository.GetSiteByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, err
	}
	return site, nil
}

func (s *siteService) GetSites(ctx context.Context, includeInactive bool) ([]*entities.Site, error) {
	return s.siteRepository.GetSites(ctx, includeInactive)
}

func (s *siteService) CreateSite(ctx context.Context, req domain.SiteCreateRequest) (*entities.Site, error) {
	site := &entities.Site{
		ID:       uuid.New(),
		Name:     req.Name,
		Code:     req.Code,
		IsActive: true,
	}
	if req.IsActive != nil {
		site.IsActive = *req.IsActive
	}
	if err := s.siteRepository.CreateSite(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *siteService) UpdateSite(ctx context.Context, id string, req domain.SiteUpdateRequest) (*entities.Site, error) {
	site, err := s.GetSiteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.Code != nil {
		site.Code = *req.Code
	}
	if req.IsActive != nil {
		site.IsActive = *req.IsActive
	}
	if err := s.siteRepository.UpdateSite(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

// DeleteSite drops a site and, through the FK cascade, all of its menu
// entries. The confirmation phrase must match exactly.
func (s *siteService) DeleteSite(ctx context.Context, id string, req domain.SiteDeleteRequest) error {
	if req.ConfirmText != domain.DeleteSiteConfirmation {
		return domain.ErrDeleteConfirmationText
	}
	if _, err := s.GetSiteByID(ctx, id); err != nil {
		return err
	}
	return s.siteRepository.DeleteSite(ctx, id)
}
