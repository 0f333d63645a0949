package feature

import (
	"context"
	"strings"

	"storefront-api/internal/domain"
	featurerepo "storefront-api/internal/repository/feature"
)

type Service struct {
	repo featurerepo.Repository
}

func New(repo featurerepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, image string) (*domain.FeatureImage, error) {
	if strings.TrimSpace(image) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.Create(ctx, image)
}

func (s *Service) List(ctx context.Context) ([]domain.FeatureImage, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
