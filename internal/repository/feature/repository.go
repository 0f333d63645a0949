package feature

import (
	"context"

	"storefront-api/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, image string) (*domain.FeatureImage, error)
	List(ctx context.Context) ([]domain.FeatureImage, error)
	Delete(ctx context.Context, id string) error
}
