package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, title, COALESCE(description, ''), COALESCE(image, ''), category, brand, price_cents, sale_price_cents, total_stock, average_rating, created_at, updated_at`

var sortClauses = map[string]string{
	"price-lowtohigh": "LEAST(NULLIF(sale_price_cents, 0), price_cents) ASC",
	"price-hightolow": "LEAST(NULLIF(sale_price_cents, 0), price_cents) DESC",
	"title-atoz":      "LOWER(title) ASC",
	"title-ztoa":      "LOWER(title) DESC",
}

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	var (
		conds []string
		args  []interface{}
	)
	if len(filter.Categories) > 0 {
		args = append(args, filter.Categories)
		conds = append(conds, fmt.Sprintf("category = ANY($%d)", len(args)))
	}
	if len(filter.Brands) > 0 {
		args = append(args, filter.Brands)
		conds = append(conds, fmt.Sprintf("brand = ANY($%d)", len(args)))
	}

	q := "SELECT " + productColumns + " FROM products"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	order, ok := sortClauses[filter.SortBy]
	if !ok {
		order = sortClauses["price-lowtohigh"]
	}
	q += " ORDER BY " + order

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE title ILIKE $1 OR description ILIKE $1 OR category ILIKE $1 OR brand ILIKE $1
ORDER BY created_at DESC
`
	pattern := "%" + escapeLike(keyword) + "%"
	rows, err := r.pool.Query(ctx, q, pattern)
	if err != nil {
		r.logger.Printf("product repo: search keyword=%q error=%v", keyword, err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, &p.Category, &p.Brand,
		&p.PriceCents, &p.SalePriceCents, &p.TotalStock, &p.AverageRating,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (title, description, image, category, brand, price_cents, sale_price_cents, total_stock)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8)
RETURNING ` + productColumns + `
`
	var out domain.Product
	err := r.pool.QueryRow(ctx, q,
		p.Title, p.Description, p.Image, p.Category, p.Brand,
		p.PriceCents, p.SalePriceCents, p.TotalStock,
	).Scan(
		&out.ID, &out.Title, &out.Description, &out.Image, &out.Category, &out.Brand,
		&out.PriceCents, &out.SalePriceCents, &out.TotalStock, &out.AverageRating,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		r.logger.Printf("product repo: create title=%q error=%v", p.Title, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s title=%q", out.ID, out.Title)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET title = $2,
    description = NULLIF($3, ''),
    image = NULLIF($4, ''),
    category = $5,
    brand = $6,
    price_cents = $7,
    sale_price_cents = $8,
    total_stock = $9,
    updated_at = now()
WHERE id = $1
RETURNING ` + productColumns + `
`
	var out domain.Product
	err := r.pool.QueryRow(ctx, q,
		p.ID, p.Title, p.Description, p.Image, p.Category, p.Brand,
		p.PriceCents, p.SalePriceCents, p.TotalStock,
	).Scan(
		&out.ID, &out.Title, &out.Description, &out.Image, &out.Category, &out.Brand,
		&out.PriceCents, &out.SalePriceCents, &out.TotalStock, &out.AverageRating,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetAverageRating(ctx context.Context, id string, rating float64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE products SET average_rating = $2 WHERE id = $1`, id, rating)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Image, &p.Category, &p.Brand,
			&p.PriceCents, &p.SalePriceCents, &p.TotalStock, &p.AverageRating,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// escapeLike neutralizes LIKE metacharacters in user-supplied keywords.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
