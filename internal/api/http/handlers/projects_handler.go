package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/service"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// ProjectsHandler manages project endpoints.
type ProjectsHandler struct {
	service *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projectService *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: projectService}
}

// Create POST /api/projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
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

	project, err := h.service.Create(c.Context(), ownerID, service.ProjectCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		LiveURL:     req.LiveURL,
		CodeURL:     req.CodeURL,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(project)
}

// Update PUT /api/projects/:id.
func (h *ProjectsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	project, err := h.service.Update(c.Context(), c.Params("id"), service.ProjectUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		LiveURL:     req.LiveURL,
		CodeURL:     req.CodeURL,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(project)
}

// Delete DELETE /api/projects/:id.
func (h *ProjectsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}

// List GET /api/projects.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	projects, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(projects)
}

// Get GET /api/projects/:id.
func (h *ProjectsHandler) Get(c *fiber.Ctx) error {
	project, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(project)
}
