package order

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, user_id::text, cart_id::text, address_id, address, city, pincode, phone, COALESCE(notes, ''),
order_status, payment_method, payment_status, COALESCE(payment_id, ''), COALESCE(payer_id, ''), total_cents, order_date, order_update_date`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// Create inserts the order and its item snapshots in one transaction.
func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO orders (user_id, cart_id, address_id, address, city, pincode, phone, notes,
                    order_status, payment_method, payment_status, payment_id, payer_id, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, NULLIF($12, ''), NULLIF($13, ''), $14)
RETURNING id::text, order_date, order_update_date
`
	out := o
	if err := tx.QueryRow(ctx, q,
		o.UserID, o.CartID,
		o.AddressInfo.AddressID, o.AddressInfo.Address, o.AddressInfo.City,
		o.AddressInfo.Pincode, o.AddressInfo.Phone, o.AddressInfo.Notes,
		o.OrderStatus, o.PaymentMethod, o.PaymentStatus, o.PaymentID, o.PayerID,
		o.TotalCents,
	).Scan(&out.ID, &out.OrderDate, &out.OrderUpdateDate); err != nil {
		return nil, err
	}

	for _, item := range o.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, title, image, price_cents, sale_price_cents, quantity)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
`, out.ID, item.ProductID, item.Title, item.Image, item.PriceCents, item.SalePriceCents, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := r.scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}
	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY order_date DESC`
	return r.list(ctx, q, userID)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC`
	return r.list(ctx, q)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET order_status = $2, order_update_date = now()
WHERE id = $1
`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.itemsFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *postgresRepo) itemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT product_id::text, title, COALESCE(image, ''), price_cents, sale_price_cents, quantity
FROM order_items
WHERE order_id = $1
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Title, &item.Image, &item.PriceCents, &item.SalePriceCents, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.CartID,
		&o.AddressInfo.AddressID, &o.AddressInfo.Address, &o.AddressInfo.City,
		&o.AddressInfo.Pincode, &o.AddressInfo.Phone, &o.AddressInfo.Notes,
		&o.OrderStatus, &o.PaymentMethod, &o.PaymentStatus, &o.PaymentID, &o.PayerID,
		&o.TotalCents, &o.OrderDate, &o.OrderUpdateDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
