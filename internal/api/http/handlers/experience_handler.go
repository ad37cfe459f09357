package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/service"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// ExperienceHandler manages work-history endpoints.
type ExperienceHandler struct {
	service *service.ExperienceService
}

// NewExperienceHandler constructs handler.
func NewExperienceHandler(experienceService *service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{service: experienceService}
}

// Create POST /api/experience.
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	var ownerID *string
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.User != nil {
		ownerID = &principal.User.ID
	}

	exp, err := h.service.Create(c.Context(), ownerID, service.ExperienceCreateInput{
		Title:       req.Title,
		Company:     req.Company,
		From:        req.From,
		To:          req.To,
		Description: req.Description,
		Locale:      req.Locale,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(exp)
}

// Update PUT /api/experience/:id.
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	exp, err := h.service.Update(c.Context(), c.Params("id"), service.ExperienceUpdateInput{
		Title:       req.Title,
		Company:     req.Company,
		From:        req.From,
		To:          req.To,
		Description: req.Description,
		Locale:      req.Locale,
	})
	if err != nil {
		return err
	}
	return c.JSON(exp)
}

// Delete DELETE /api/experience/:id.
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Experience deleted successfully"})
}

// List GET /api/experience.
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// Get GET /api/experience/:id.
func (h *ExperienceHandler) Get(c *fiber.Ctx) error {
	exp, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(exp)
}
