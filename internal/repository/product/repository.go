package product

import (
	"context"

	"storefront-api/internal/domain"
)

// ListFilter narrows and orders the shop product listing. Empty slices
// mean "no filter"; an empty SortBy falls back to price-lowtohigh.
type ListFilter struct {
	Categories []string
	Brands     []string
	SortBy     string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	Search(ctx context.Context, keyword string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	SetAverageRating(ctx context.Context, id string, rating float64) error
}
