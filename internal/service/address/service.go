package address

import (
	"context"
	"strings"

	"storefront-api/internal/domain"
	addressrepo "storefront-api/internal/repository/address"
)

type Service struct {
	repo addressRepo
}

type addressRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
	Get(ctx context.Context, userID, id string) (*domain.Address, error)
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	Update(ctx context.Context, a domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, userID, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

func New(repo addressrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the address form fields. Notes is optional, everything
// else is required.
type Input struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Address) == "" ||
		strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.Pincode) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Address, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create adds an address to the user's book, capped at
// domain.MaxAddressesPerUser entries.
func (s *Service) Create(ctx context.Context, userID string, in Input) (*domain.Address, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxAddressesPerUser {
		return nil, domain.ErrAddressLimit
	}
	return s.repo.Create(ctx, domain.Address{
		UserID:  userID,
		Address: in.Address,
		City:    in.City,
		Pincode: in.Pincode,
		Phone:   in.Phone,
		Notes:   in.Notes,
	})
}

func (s *Service) Update(ctx context.Context, userID, id string, in Input) (*domain.Address, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Address{
		ID:      id,
		UserID:  userID,
		Address: in.Address,
		City:    in.City,
		Pincode: in.Pincode,
		Phone:   in.Phone,
		Notes:   in.Notes,
	})
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
