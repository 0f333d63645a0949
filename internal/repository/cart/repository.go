package cart

import (
	"context"

	"storefront-api/internal/domain"
)

// Repository persists one cart per user. Reads return items denormalized
// with catalog title/image/price so handlers can respond in one query.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string, delta int) error
	SetItemQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Delete(ctx context.Context, cartID string) error
}
