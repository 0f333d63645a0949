package cart

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	cartrepo "storefront-api/internal/repository/cart"
	productrepo "storefront-api/internal/repository/product"
)

// Service keeps per-user cart lines consistent with current catalog stock.
// Every successful mutation returns the full denormalized cart so the
// client can re-render totals in one round trip.
type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string, delta int) error
	SetItemQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productrepo.Repository) *Service {
	return &Service{repo: repo, productRepo: products}
}

// Get returns the user's cart. A user without a cart row gets an empty
// cart, not an error.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart, nil
}

// AddItem increments the line for productID by delta, creating it when
// absent. The resulting quantity must not exceed the product's stock.
func (s *Service) AddItem(ctx context.Context, userID, productID string, delta int) (*domain.Cart, error) {
	if delta < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	current := 0
	if line := cart.Line(productID); line != nil {
		current = line.Quantity
	}
	if current+delta > product.TotalStock {
		return nil, domain.ErrStockExceeded
	}

	// The repository re-checks the ceiling under a product row lock, so
	// concurrent adds racing past this check still cannot exceed stock.
	if err := s.repo.AddItem(ctx, userID, productID, delta); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// SetQuantity replaces the line's quantity outright.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.TotalStock {
		return nil, domain.ErrStockExceeded
	}
	if err := s.repo.SetItemQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// RemoveItem deletes the line. Removing an absent line is a no-op success.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}
