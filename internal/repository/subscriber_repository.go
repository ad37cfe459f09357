package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// SubscriberRepository defines persistence access for newsletter recipients.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *domain.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	List(ctx context.Context) ([]domain.Subscriber, error)
}

type subscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository returns a Postgres-backed implementation.
func NewSubscriberRepository(pool *pgxpool.Pool) SubscriberRepository {
	return &subscriberRepository{pool: pool}
}

func (r *subscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	const query = `
        INSERT INTO subscribers (email)
        VALUES (LOWER($1))
        RETURNING id, email, created_at`

	return r.pool.QueryRow(ctx, query, sub.Email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	const query = `
        SELECT id, email, created_at
        FROM subscribers WHERE email=LOWER($1)`

	var sub domain.Subscriber
	if err := r.pool.QueryRow(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) List(ctx context.Context) ([]domain.Subscriber, error) {
	const query = `
        SELECT id, email, created_at
        FROM subscribers ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]domain.Subscriber, 0)
	for rows.Next() {
		var sub domain.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
