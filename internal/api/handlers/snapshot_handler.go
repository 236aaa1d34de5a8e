package handlers

import (
	"errors"

	"cookops-backend/domain"
	"cookops-backend/internal/api/presenters"
	"cookops-backend/pkg/snapshot"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SnapshotHandler interface {
		ImportSnapshots(c *fiber.Ctx) error
	}

	snapshotHandler struct {
		snapshotService snapshot.SnapshotService
		validator       *validator.Validate
	}
)

func NewSnapshotHandler(snapshotService snapshot.SnapshotService, validator *validator.Validate) SnapshotHandler {
	return &snapshotHandler{
		snapshotService: snapshotService,
		validator:       validator,
	}
}

func (h *snapshotHandler) ImportSnapshots(c *fiber.Ctx) error {
	req := new(domain.SnapshotEnvelopeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSnapshotImport, err)
	}

	result, err := h.snapshotService.ImportEnvelope(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedEnvelope) || errors.Is(err, domain.ErrUnsupportedSource) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSnapshotImport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSnapshotImport, err)
	}
	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessSnapshotImport)
}
