package catalog

import (
	"context"
	"strings"

	"storefront-api/internal/domain"
	productrepo "storefront-api/internal/repository/product"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	List(ctx context.Context, filter productrepo.ListFilter) ([]domain.Product, error)
	Search(ctx context.Context, keyword string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListParams mirrors the shop listing query string: CSV multi-value
// category/brand filters plus one sort key.
type ListParams struct {
	Category string
	Brand    string
	SortBy   string
}

func (s *Service) List(ctx context.Context, params ListParams) ([]domain.Product, error) {
	return s.repo.List(ctx, productrepo.ListFilter{
		Categories: splitCSV(params.Category),
		Brands:     splitCSV(params.Brand),
		SortBy:     params.SortBy,
	})
}

func (s *Service) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.Search(ctx, keyword)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Input carries the admin product form.
type Input struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	Category       string `json:"category"`
	Brand          string `json:"brand"`
	PriceCents     int64  `json:"priceCents"`
	SalePriceCents int64  `json:"salePriceCents"`
	TotalStock     int    `json:"totalStock"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Brand) == "" {
		return domain.ErrInvalidInput
	}
	if in.PriceCents <= 0 || in.SalePriceCents < 0 || in.TotalStock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, productFromInput("", in))
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, productFromInput(id, in))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func productFromInput(id string, in Input) domain.Product {
	return domain.Product{
		ID:             id,
		Title:          in.Title,
		Description:    in.Description,
		Image:          in.Image,
		Category:       in.Category,
		Brand:          in.Brand,
		PriceCents:     in.PriceCents,
		SalePriceCents: in.SalePriceCents,
		TotalStock:     in.TotalStock,
	}
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
