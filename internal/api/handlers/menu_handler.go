package handlers

import (
	"errors"

	"cookops-backend/domain"
	"cookops-backend/internal/api/presenters"
	"cookops-backend/pkg/menu"
	"cookops-backend/pkg/site"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	MenuHandler interface {
		GetEffectiveEntries(c *fiber.Ctx) error
		SyncEntries(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		siteService site.SiteService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, siteService site.SiteService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		siteService: siteService,
		validator:   validator,
	}
}

// parseSiteAndDate validates the site/date query params shared by the read
// endpoints. Failures here are structural: the pipeline never runs.
func (h *menuHandler) parseSiteAndDate(c *fiber.Ctx) (uuid.UUID, string, error) {
	rawSite := c.Query("site")
	rawDate := c.Query("date")
	if rawSite == "" || rawDate == "" {
		return uuid.Nil, "", domain.ErrMissingSiteDate
	}
	siteID, err := uuid.Parse(rawSite)
	if err != nil {
		return uuid.Nil, "", domain.ErrParseUUID
	}
	if _, err := menu.ParseISODate(rawDate); err != nil {
		return uuid.Nil, "", domain.ErrInvalidDate
	}
	return siteID, rawDate, nil
}

func (h *menuHandler) GetEffectiveEntries(c *fiber.Ctx) error {
	siteID, rawDate, err := h.parseSiteAndDate(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}
	if _, err := h.siteService.GetSiteByID(c.Context(), siteID.String()); err != nil {
		if errors.Is(err, domain.ErrSiteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetEntries, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}

	target, _ := menu.ParseISODate(rawDate)
	entries, err := h.menuService.EffectiveEntries(c.Context(), siteID, target)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}
	return presenters.SuccessResponse(c, domain.EffectiveEntriesResponse{
		Count:   len(entries),
		Entries: entries,
	}, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *menuHandler) SyncEntries(c *fiber.Ctx) error {
	req := new(domain.MenuEntrySyncRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSyncEntries, err)
	}

	res, err := h.menuService.SyncEntries(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrSiteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSyncEntries, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSyncEntries, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSyncEntries)
}
