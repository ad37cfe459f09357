package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// ProjectRepository defines persistence access for portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository returns a Postgres-backed implementation.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectColumns = `
        p.id, p.title, p.description, p.image, p.live_url, p.code_url, p.tags, p.owner_id,
        p.created_at, p.updated_at, u.id, u.name, u.email`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (title, description, image, live_url, code_url, tags, owner_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.Image,
		project.LiveURL,
		project.CodeURL,
		project.Tags,
		project.OwnerID,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
        UPDATE projects SET title=$1, description=$2, image=$3, live_url=$4, code_url=$5, tags=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.Image,
		project.LiveURL,
		project.CodeURL,
		project.Tags,
		project.ID,
	).Scan(&project.UpdatedAt)
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `
        SELECT` + projectColumns + `
        FROM projects p LEFT JOIN users u ON u.id = p.owner_id
        WHERE p.id=$1`

	return scanProject(r.pool.QueryRow(ctx, query, id))
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	query := `
        SELECT` + projectColumns + `
        FROM projects p LEFT JOIN users u ON u.id = p.owner_id
        ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		project     domain.Project
		ownerID     *string
		ownerName   *string
		ownerEmail  *string
	)
	if err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Image,
		&project.LiveURL,
		&project.CodeURL,
		&project.Tags,
		&project.OwnerID,
		&project.CreatedAt,
		&project.UpdatedAt,
		&ownerID,
		&ownerName,
		&ownerEmail,
	); err != nil {
		return nil, err
	}
	if ownerID != nil && ownerEmail != nil {
		project.Owner = &domain.OwnerSummary{ID: *ownerID, Name: ownerName, Email: *ownerEmail}
	}
	return &project, nil
}
