package dto

import "github.com/spec-kit/portfolio-service/internal/domain"

// RegisterRequest payload for the admin registration endpoint.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     *string `json:"name"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse standard body for register/login.
type AuthResponse struct {
	User    domain.SafeUser `json:"user"`
	Message string          `json:"message"`
}

// MeResponse body for GET /api/auth/me.
type MeResponse struct {
	User domain.SafeUser `json:"user"`
}
