package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/repository"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// ExperienceCreateInput carries the fields accepted on creation. Only Title is required.
type ExperienceCreateInput struct {
	Title       string
	Company     *string
	From        *string
	To          *string
	Description *string
	Locale      *domain.Locale
}

// ExperienceUpdateInput carries optional replacements; nil fields keep their value.
type ExperienceUpdateInput struct {
	Title       *string
	Company     *string
	From        *string
	To          *string
	Description *string
	Locale      *domain.Locale
}

// ExperienceService manages work-history entries.
type ExperienceService struct {
	experiences repository.ExperienceRepository
}

// NewExperienceService builds the service.
func NewExperienceService(experiences repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experiences: experiences}
}

// Create persists a new entry.
func (s *ExperienceService) Create(ctx context.Context, ownerID *string, input ExperienceCreateInput) (*domain.Experience, error) {
	exp := &domain.Experience{
		Title:       input.Title,
		Company:     input.Company,
		From:        input.From,
		To:          input.To,
		Description: input.Description,
		Locale:      input.Locale,
		OwnerID:     ownerID,
	}
	if err := s.experiences.Create(ctx, exp); err != nil {
		return nil, apperrors.MapError(err)
	}
	return exp, nil
}

// Update applies non-nil fields to an existing entry.
func (s *ExperienceService) Update(ctx context.Context, id string, input ExperienceUpdateInput) (*domain.Experience, error) {
	exp, err := s.experiences.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("experience", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if input.Title != nil {
		exp.Title = *input.Title
	}
	if input.Company != nil {
		exp.Company = input.Company
	}
	if input.From != nil {
		exp.From = input.From
	}
	if input.To != nil {
		exp.To = input.To
	}
	if input.Description != nil {
		exp.Description = input.Description
	}
	if input.Locale != nil {
		exp.Locale = input.Locale
	}

	if err := s.experiences.Update(ctx, exp); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("experience", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return exp, nil
}

// Delete removes an entry by id.
func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	if err := s.experiences.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("experience", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// GetByID returns a single entry.
func (s *ExperienceService) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	exp, err := s.experiences.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("experience", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return exp, nil
}

// List returns all entries ordered by start date, newest first.
func (s *ExperienceService) List(ctx context.Context) ([]domain.Experience, error) {
	entries, err := s.experiences.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}
