package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/repository"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

// ProjectCreateInput carries the fields accepted on creation.
type ProjectCreateInput struct {
	Title       string
	Description string
	Image       *string
	LiveURL     *string
	CodeURL     *string
	Tags        []string
}

// ProjectUpdateInput carries optional replacements; nil fields keep their value.
type ProjectUpdateInput struct {
	Title       *string
	Description *string
	Image       *string
	LiveURL     *string
	CodeURL     *string
	Tags        []string
}

// ProjectService manages portfolio projects.
type ProjectService struct {
	projects repository.ProjectRepository
}

// NewProjectService builds the service.
func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// Create persists a new project.
func (s *ProjectService) Create(ctx context.Context, ownerID *string, input ProjectCreateInput) (*domain.Project, error) {
	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		LiveURL:     input.LiveURL,
		CodeURL:     input.CodeURL,
		Tags:        input.Tags,
		OwnerID:     ownerID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, apperrors.MapError(err)
	}
	return project, nil
}

// Update applies non-nil fields to an existing project.
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectUpdateInput) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("project", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Image != nil {
		project.Image = input.Image
	}
	if input.LiveURL != nil {
		project.LiveURL = input.LiveURL
	}
	if input.CodeURL != nil {
		project.CodeURL = input.CodeURL
	}
	if input.Tags != nil {
		project.Tags = input.Tags
	}

	if err := s.projects.Update(ctx, project); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("project", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return project, nil
}

// Delete removes a project by id.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("project", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// GetByID returns a single project.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("project", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return project, nil
}

// List returns all projects, newest first, with owner projections.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return projects, nil
}
