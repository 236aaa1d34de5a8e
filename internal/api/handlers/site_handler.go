package handlers

import (
	"errors"

	"cookops-backend/domain"
	"cookops-backend/internal/api/presenters"
	"cookops-backend/pkg/site"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SiteHandler interface {
		GetSites(c *fiber.Ctx) error
		CreateSite(c *fiber.Ctx) error
		UpdateSite(c *fiber.Ctx) error
		DeleteSite(c *fiber.Ctx) error
	}

	siteHandler struct {
		siteService site.SiteService
		validator   *validator.Validate
	}
)

func NewSiteHandler(siteService site.SiteService, validator *validator.Validate) SiteHandler {
	return &siteHandler{
		siteService: siteService,
		validator:   validator,
	}
}

func (h *siteHandler) GetSites(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("include_inactive", false)

	sites, err := h.siteService.GetSites(c.Context(), includeInactive)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSites, err)
	}
	return presenters.SuccessResponse(c, sites, fiber.StatusOK, domain.MessageSuccessGetSites)
}

func (h *siteHandler) CreateSite(c *fiber.Ctx) error {
	req := new(domain.SiteCreateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSite, err)
	}

	created, err := h.siteService.CreateSite(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSite, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateSite)
}

func (h *siteHandler) UpdateSite(c *fiber.Ctx) error {
	siteID := c.Params("id")
	req := new(domain.SiteUpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	updated, err := h.siteService.UpdateSite(c.Context(), siteID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrSiteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateSite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSite, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateSite)
}

func (h *siteHandler) DeleteSite(c *fiber.Ctx) error {
	siteID := c.Params("id")
	req := new(domain.SiteDeleteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.siteService.DeleteSite(c.Context(), siteID, *req); err != nil {
		if errors.Is(err, domain.ErrSiteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteSite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSite, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSite)
}
