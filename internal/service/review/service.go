package review

import (
	"context"
	"strings"

	"storefront-api/internal/domain"
	productrepo "storefront-api/internal/repository/product"
	reviewrepo "storefront-api/internal/repository/review"
)

type Service struct {
	repo     reviewRepo
	products productWriter
}

type reviewRepo interface {
	Create(ctx context.Context, rev domain.Review) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	AverageForProduct(ctx context.Context, productID string) (float64, error)
}

type productWriter interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	SetAverageRating(ctx context.Context, id string, rating float64) error
}

func New(repo reviewrepo.Repository, products productrepo.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// Add stores one review per (user, product) and refreshes the product's
// aggregate rating.
func (s *Service) Add(ctx context.Context, userID, userName, productID, message string, rating int) (*domain.Review, error) {
	if rating < 1 || rating > 5 || strings.TrimSpace(message) == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	rev, err := s.repo.Create(ctx, domain.Review{
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Message:   message,
		Rating:    rating,
	})
	if err != nil {
		return nil, err
	}

	avg, err := s.repo.AverageForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.products.SetAverageRating(ctx, productID, avg); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}
