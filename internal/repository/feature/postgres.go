package feature

import (
	"context"

	"storefront-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, image string) (*domain.FeatureImage, error) {
	const q = `
INSERT INTO feature_images (image)
VALUES ($1)
RETURNING id::text, image, created_at
`
	var out domain.FeatureImage
	if err := r.pool.QueryRow(ctx, q, image).Scan(&out.ID, &out.Image, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.FeatureImage, error) {
	const q = `SELECT id::text, image, created_at FROM feature_images ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.FeatureImage
	for rows.Next() {
		var f domain.FeatureImage
		if err := rows.Scan(&f.ID, &f.Image, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM feature_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
