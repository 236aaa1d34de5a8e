package handlers

import (
	"errors"

	"cookops-backend/domain"
	"cookops-backend/internal/api/presenters"
	"cookops-backend/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetSuppliers(c *fiber.Ctx) error
		GetSupplierProducts(c *fiber.Ctx) error
		ImportCatalog(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.catalogService.GetSuppliers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuppliers, err)
	}
	return presenters.SuccessResponse(c, suppliers, fiber.StatusOK, domain.MessageSuccessGetSuppliers)
}

func (h *catalogHandler) GetSupplierProducts(c *fiber.Ctx) error {
	supplierID := c.Params("id")

	products, err := h.catalogService.GetSupplierProducts(c.Context(), supplierID)
	if err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProducts, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *catalogHandler) ImportCatalog(c *fiber.Ctx) error {
	req := new(domain.CatalogImportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCatalogImport, err)
	}

	result, err := h.catalogService.ImportCatalog(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCatalogImport, err)
	}
	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessCatalogImport)
}
