package review

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, rev domain.Review) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (product_id, user_id, user_name, review_message, review_value)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, product_id::text, user_id::text, user_name, review_message, review_value, created_at
`
	var out domain.Review
	err := r.pool.QueryRow(ctx, q, rev.ProductID, rev.UserID, rev.UserName, rev.Message, rev.Rating).
		Scan(&out.ID, &out.ProductID, &out.UserID, &out.UserName, &out.Message, &out.Rating, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	const q = `
SELECT id::text, product_id::text, user_id::text, user_name, review_message, review_value, created_at
FROM reviews
WHERE product_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.UserName, &rev.Message, &rev.Rating, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	return result, rows.Err()
}

func (r *postgresRepo) AverageForProduct(ctx context.Context, productID string) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx, `
SELECT COALESCE(AVG(review_value), 0)
FROM reviews
WHERE product_id = $1
`, productID).Scan(&avg)
	return avg, err
}
