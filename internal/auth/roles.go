package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/domain"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// RequireAdmin ensures the authenticated principal holds the ADMIN role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("not authenticated")
		}
		if principal.User.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admins only")
		}
		return c.Next()
	}
}
