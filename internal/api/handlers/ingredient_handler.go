package handlers

import (
	"errors"

	"cookops-backend/domain"
	"cookops-backend/internal/api/presenters"
	"cookops-backend/pkg/ingredients"
	"cookops-backend/pkg/menu"
	"cookops-backend/pkg/site"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	IngredientHandler interface {
		GetAggregation(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredients.IngredientService
		siteService       site.SiteService
	}
)

func NewIngredientHandler(ingredientService ingredients.IngredientService, siteService site.SiteService) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		siteService:       siteService,
	}
}

func (h *ingredientHandler) GetAggregation(c *fiber.Ctx) error {
	rawSite := c.Query("site")
	rawDate := c.Query("date")
	view := c.Query("view", domain.ViewSupplier)

	if rawSite == "" || rawDate == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAggregation, domain.ErrMissingSiteDate)
	}
	siteID, err := uuid.Parse(rawSite)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAggregation, domain.ErrParseUUID)
	}
	target, err := menu.ParseISODate(rawDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAggregation, domain.ErrInvalidDate)
	}
	if _, err := h.siteService.GetSiteByID(c.Context(), siteID.String()); err != nil {
		if errors.Is(err, domain.ErrSiteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAggregation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAggregation, err)
	}

	res, err := h.ingredientService.Aggregate(c.Context(), siteID, target, view)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAggregation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAggregation)
}
