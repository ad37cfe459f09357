package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/service"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// AuthHandler exposes the authentication endpoints.
type AuthHandler struct {
	auth       *service.AuthService
	cookieName string
	cookieAge  time.Duration
	secure     bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, authCfg config.AuthConfig, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		auth:       authService,
		cookieName: authCfg.CookieName,
		cookieAge:  time.Duration(authCfg.CookieMaxAgeSec) * time.Second,
		secure:     secureCookies,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	user, token, _, err := h.auth.Register(c.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	h.setTokenCookie(c, token)
	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		User:    user.Safe(),
		Message: "Admin registered successfully",
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setTokenCookie(c, token)
	return c.JSON(dto.AuthResponse{
		User:    user.Safe(),
		Message: "Logged in",
	})
}

// Logout handles POST /api/auth/logout. Stateless: only the cookie is cleared.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("not authenticated")
	}

	user, err := h.auth.Me(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.MeResponse{User: user.Safe()})
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cookieAge),
		MaxAge:   int(h.cookieAge.Seconds()),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
