package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// BlogRepository defines persistence access for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	List(ctx context.Context) ([]domain.Blog, error)
}

type blogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository returns a Postgres-backed implementation.
func NewBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &blogRepository{pool: pool}
}

const blogColumns = `
        b.id, b.title, b.slug, b.content, b.thumbnail, b.category, b.author_id,
        b.created_at, b.updated_at, u.id, u.name, u.email`

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	const query = `
        INSERT INTO blogs (title, slug, content, thumbnail, category, author_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Thumbnail,
		blog.Category,
		blog.AuthorID,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
}

func (r *blogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	const query = `
        UPDATE blogs SET title=$1, slug=$2, content=$3, thumbnail=$4, category=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Thumbnail,
		blog.Category,
		blog.ID,
	).Scan(&blog.UpdatedAt)
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	query := `
        SELECT` + blogColumns + `
        FROM blogs b LEFT JOIN users u ON u.id = b.author_id
        WHERE b.id=$1`

	return scanBlog(r.pool.QueryRow(ctx, query, id))
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	query := `
        SELECT` + blogColumns + `
        FROM blogs b LEFT JOIN users u ON u.id = b.author_id
        WHERE b.slug=$1`

	return scanBlog(r.pool.QueryRow(ctx, query, slug))
}

func (r *blogRepository) List(ctx context.Context) ([]domain.Blog, error) {
	query := `
        SELECT` + blogColumns + `
        FROM blogs b LEFT JOIN users u ON u.id = b.author_id
        ORDER BY b.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}
	return blogs, rows.Err()
}

func scanBlog(row rowScanner) (*domain.Blog, error) {
	var (
		blog        domain.Blog
		authorID    *string
		authorName  *string
		authorEmail *string
	)
	if err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Slug,
		&blog.Content,
		&blog.Thumbnail,
		&blog.Category,
		&blog.AuthorID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
		&authorID,
		&authorName,
		&authorEmail,
	); err != nil {
		return nil, err
	}
	if authorID != nil && authorEmail != nil {
		blog.Author = &domain.OwnerSummary{ID: *authorID, Name: authorName, Email: *authorEmail}
	}
	return &blog, nil
}
