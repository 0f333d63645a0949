package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Title          string
	Description    string
	Image          string
	Category       string
	Brand          string
	PriceCents     int64
	SalePriceCents int64
	TotalStock     int
}

// Apply inserts basic seed data for manual testing. It is idempotent:
// products are matched by title, the admin account by email.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool, "admin", "admin@storefront.local", "admin-password"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	products := []productSeed{
		{
			Title:       "Classic Cotton Tee",
			Description: "Soft cotton tee in a relaxed fit",
			Category:    "men",
			Brand:       "nike",
			PriceCents:  1999,
			TotalStock:  50,
		},
		{
			Title:          "Running Sneakers",
			Description:    "Lightweight everyday runners",
			Category:       "footwear",
			Brand:          "adidas",
			PriceCents:     7999,
			SalePriceCents: 5999,
			TotalStock:     25,
		},
		{
			Title:       "Denim Jacket",
			Description: "Mid-wash denim jacket",
			Category:    "women",
			Brand:       "levi",
			PriceCents:  8999,
			TotalStock:  15,
		},
		{
			Title:          "Kids Hoodie",
			Description:    "Fleece-lined pullover hoodie",
			Category:       "kids",
			Brand:          "h&m",
			PriceCents:     2999,
			SalePriceCents: 2499,
			TotalStock:     40,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Title, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, userName, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (user_name, email, password_hash, role)
VALUES ($1, $2, $3, 'admin')
ON CONFLICT (email) DO UPDATE SET role = 'admin'
`
	_, err = pool.Exec(ctx, q, userName, email, string(hash))
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE title = $1)`, p.Title).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	const q = `
INSERT INTO products (title, description, image, category, brand, price_cents, sale_price_cents, total_stock)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := pool.Exec(ctx, q, p.Title, p.Description, p.Image, p.Category, p.Brand, p.PriceCents, p.SalePriceCents, p.TotalStock)
	return err
}
