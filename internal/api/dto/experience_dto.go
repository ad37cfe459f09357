package dto

import "github.com/spec-kit/portfolio-service/internal/domain"

// CreateExperienceRequest payload for new entries. Only title is required.
type CreateExperienceRequest struct {
	Title       string         `json:"title" validate:"required"`
	Company     *string        `json:"company"`
	From        *string        `json:"from"`
	To          *string        `json:"to"`
	Description *string        `json:"description"`
	Locale      *domain.Locale `json:"locale" validate:"omitempty,oneof=en ar"`
}

// UpdateExperienceRequest payload for edits; absent fields are left unchanged.
type UpdateExperienceRequest struct {
	Title       *string        `json:"title"`
	Company     *string        `json:"company"`
	From        *string        `json:"from"`
	To          *string        `json:"to"`
	Description *string        `json:"description"`
	Locale      *domain.Locale `json:"locale" validate:"omitempty,oneof=en ar"`
}
