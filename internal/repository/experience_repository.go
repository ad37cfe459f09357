package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// ExperienceRepository defines persistence access for work-history entries.
type ExperienceRepository interface {
	Create(ctx context.Context, exp *domain.Experience) error
	Update(ctx context.Context, exp *domain.Experience) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context) ([]domain.Experience, error)
}

type experienceRepository struct {
	pool *pgxpool.Pool
}

// NewExperienceRepository returns a Postgres-backed implementation.
func NewExperienceRepository(pool *pgxpool.Pool) ExperienceRepository {
	return &experienceRepository{pool: pool}
}

func (r *experienceRepository) Create(ctx context.Context, exp *domain.Experience) error {
	const query = `
        INSERT INTO experiences (title, company, date_from, date_to, description, locale, owner_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		exp.Title,
		exp.Company,
		exp.From,
		exp.To,
		exp.Description,
		exp.Locale,
		exp.OwnerID,
	).Scan(&exp.ID, &exp.CreatedAt, &exp.UpdatedAt)
}

func (r *experienceRepository) Update(ctx context.Context, exp *domain.Experience) error {
	const query = `
        UPDATE experiences SET title=$1, company=$2, date_from=$3, date_to=$4, description=$5, locale=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		exp.Title,
		exp.Company,
		exp.From,
		exp.To,
		exp.Description,
		exp.Locale,
		exp.ID,
	).Scan(&exp.UpdatedAt)
}

func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	const query = `
        SELECT id, title, company, date_from, date_to, description, locale, owner_id, created_at, updated_at
        FROM experiences WHERE id=$1`

	return scanExperience(r.pool.QueryRow(ctx, query, id))
}

func (r *experienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	const query = `
        SELECT id, title, company, date_from, date_to, description, locale, owner_id, created_at, updated_at
        FROM experiences ORDER BY date_from DESC NULLS LAST`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.Experience, 0)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *exp)
	}
	return entries, rows.Err()
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var exp domain.Experience
	if err := row.Scan(
		&exp.ID,
		&exp.Title,
		&exp.Company,
		&exp.From,
		&exp.To,
		&exp.Description,
		&exp.Locale,
		&exp.OwnerID,
		&exp.CreatedAt,
		&exp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &exp, nil
}
