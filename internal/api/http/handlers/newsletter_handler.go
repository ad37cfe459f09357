package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/service"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// NewsletterHandler exposes subscription and broadcast endpoints.
type NewsletterHandler struct {
	service *service.NewsletterService
}

// NewNewsletterHandler constructs handler.
func NewNewsletterHandler(newsletterService *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: newsletterService}
}

// Subscribe POST /api/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if _, err := h.service.Subscribe(c.Context(), req.Email); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Subscribed successfully"})
}

// Notify POST /api/newsletter/notify.
func (h *NewsletterHandler) Notify(c *fiber.Ctx) error {
	var req dto.NotifyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	report, err := h.service.Broadcast(c.Context(), req.Subject, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Notification process finished",
		"report":  report,
	})
}
