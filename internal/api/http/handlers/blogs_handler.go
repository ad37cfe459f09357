package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/service"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// BlogsHandler manages blog endpoints. Mutations are admin-gated at the
// router; reads are public.
type BlogsHandler struct {
	service *service.BlogService
}

// NewBlogsHandler constructs handler.
func NewBlogsHandler(blogService *service.BlogService) *BlogsHandler {
	return &BlogsHandler{service: blogService}
}

// Create POST /api/blogs.
func (h *BlogsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	var authorID *string
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.User != nil {
		authorID = &principal.User.ID
	}

	blog, err := h.service.Create(c.Context(), authorID, service.BlogCreateInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(blog)
}

// Update PUT /api/blogs/:id.
func (h *BlogsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	blog, err := h.service.Update(c.Context(), c.Params("id"), service.BlogUpdateInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(blog)
}

// Delete DELETE /api/blogs/:id.
func (h *BlogsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Blog deleted successfully"})
}

// List GET /api/blogs.
func (h *BlogsHandler) List(c *fiber.Ctx) error {
	blogs, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(blogs)
}

// GetBySlug GET /api/blogs/:slug.
func (h *BlogsHandler) GetBySlug(c *fiber.Ctx) error {
	blog, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(blog)
}
