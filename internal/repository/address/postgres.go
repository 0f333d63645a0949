package address

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const addressColumns = `id::text, user_id::text, address, city, pincode, phone, COALESCE(notes, ''), created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	const q = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Address, &a.City, &a.Pincode, &a.Phone, &a.Notes, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, userID, id string) (*domain.Address, error) {
	const q = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 AND id = $2`
	var a domain.Address
	err := r.pool.QueryRow(ctx, q, userID, id).Scan(&a.ID, &a.UserID, &a.Address, &a.City, &a.Pincode, &a.Phone, &a.Notes, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
INSERT INTO addresses (user_id, address, city, pincode, phone, notes)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
RETURNING ` + addressColumns + `
`
	var out domain.Address
	err := r.pool.QueryRow(ctx, q, a.UserID, a.Address, a.City, a.Pincode, a.Phone, a.Notes).
		Scan(&out.ID, &out.UserID, &out.Address, &out.City, &out.Pincode, &out.Phone, &out.Notes, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
UPDATE addresses
SET address = $3, city = $4, pincode = $5, phone = $6, notes = NULLIF($7, '')
WHERE user_id = $1 AND id = $2
RETURNING ` + addressColumns + `
`
	var out domain.Address
	err := r.pool.QueryRow(ctx, q, a.UserID, a.ID, a.Address, a.City, a.Pincode, a.Phone, a.Notes).
		Scan(&out.ID, &out.UserID, &out.Address, &out.City, &out.Pincode, &out.Phone, &out.Notes, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, userID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM addresses WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
