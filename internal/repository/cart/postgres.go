package cart

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	const cartQuery = `
SELECT id::text, user_id::text, created_at
FROM carts
WHERE user_id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT ci.product_id::text, ci.quantity, p.title, COALESCE(p.image, ''), p.price_cents, p.sale_price_cents
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ProductID,
			&item.Quantity,
			&item.Title,
			&item.Image,
			&item.PriceCents,
			&item.SalePriceCents,
		); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

// AddItem increments (or creates) the user's line for productID inside a
// transaction. The product row is locked so the stock ceiling holds even
// under concurrent adds for the same product.
func (r *postgresRepo) AddItem(ctx context.Context, userID, productID string, delta int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cartID, err := ensureCart(ctx, tx, userID)
	if err != nil {
		return err
	}

	stock, err := lockProductStock(ctx, tx, productID)
	if err != nil {
		return err
	}

	var existing int
	err = tx.QueryRow(ctx, `
SELECT quantity
FROM cart_items
WHERE cart_id = $1 AND product_id = $2
`, cartID, productID).Scan(&existing)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if existing+delta > stock {
		return domain.ErrStockExceeded
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
`, cartID, productID, delta); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) SetItemQuantity(ctx context.Context, userID, productID string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cartID, err := cartIDForUser(ctx, tx, userID)
	if err != nil {
		return err
	}

	stock, err := lockProductStock(ctx, tx, productID)
	if err != nil {
		return err
	}
	if quantity > stock {
		return domain.ErrStockExceeded
	}

	cmd, err := tx.Exec(ctx, `
UPDATE cart_items
SET quantity = $3
WHERE cart_id = $1 AND product_id = $2
`, cartID, productID, quantity)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

// RemoveItem deletes the line if present. Removing an absent line is a
// no-op so the operation stays idempotent.
func (r *postgresRepo) RemoveItem(ctx context.Context, userID, productID string) error {
	_, err := r.pool.Exec(ctx, `
DELETE FROM cart_items ci
USING carts c
WHERE ci.cart_id = c.id AND c.user_id = $1 AND ci.product_id = $2
`, userID, productID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, cartID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func ensureCart(ctx context.Context, tx pgx.Tx, userID string) (string, error) {
	var cartID string
	err := tx.QueryRow(ctx, `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id::text
`, userID).Scan(&cartID)
	return cartID, err
}

func cartIDForUser(ctx context.Context, tx pgx.Tx, userID string) (string, error) {
	var cartID string
	err := tx.QueryRow(ctx, `SELECT id::text FROM carts WHERE user_id = $1`, userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return cartID, err
}

func lockProductStock(ctx context.Context, tx pgx.Tx, productID string) (int, error) {
	var stock int
	err := tx.QueryRow(ctx, `
SELECT total_stock
FROM products
WHERE id = $1
FOR UPDATE
`, productID).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return stock, err
}
