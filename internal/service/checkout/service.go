package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront-api/internal/domain"
	"storefront-api/internal/payment"
	addressrepo "storefront-api/internal/repository/address"
	cartrepo "storefront-api/internal/repository/cart"
	orderrepo "storefront-api/internal/repository/order"
)

// DraftState tracks a checkout draft through the payment flow.
type DraftState string

const (
	StateDraft           DraftState = "draft"
	StateAwaitingPayment DraftState = "awaiting_payment"
	StateCaptured        DraftState = "captured"
	StateFailed          DraftState = "failed"
)

// Draft is an unpersisted candidate order. Nothing is written to the
// store until CapturePayment succeeds; a Failed draft is simply discarded
// and checkout restarts from BuildDraft.
type Draft struct {
	State       DraftState   `json:"state"`
	Order       domain.Order `json:"order"`
	PaymentID   string       `json:"paymentId,omitempty"`
	ApprovalURL string       `json:"approvalUrl,omitempty"`
}

type Service struct {
	carts     cartRepo
	addresses addressRepo
	orders    orderRepo
	provider  payment.Provider
	logger    *log.Logger
	currency  string
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Delete(ctx context.Context, cartID string) error
}

type addressRepo interface {
	Get(ctx context.Context, userID, id string) (*domain.Address, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}

func New(carts cartrepo.Repository, addresses addressrepo.Repository, orders orderrepo.Repository, provider payment.Provider, logger *log.Logger, currency string) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		carts:     carts,
		addresses: addresses,
		orders:    orders,
		provider:  provider,
		logger:    logger,
		currency:  currency,
	}
}

// BuildDraft assembles a pending order from the user's cart and the chosen
// shipping address. The cart lines and the address are snapshotted; the
// total is the sum of effective unit prices (sale price wins when set)
// times quantities.
func (s *Service) BuildDraft(ctx context.Context, userID, addressID string) (*Draft, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEmptyCart
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	addr, err := s.addresses.Get(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	var total int64
	for _, line := range cart.Items {
		item := domain.OrderItem{
			ProductID:      line.ProductID,
			Title:          line.Title,
			Image:          line.Image,
			PriceCents:     line.PriceCents,
			SalePriceCents: line.SalePriceCents,
			Quantity:       line.Quantity,
		}
		items = append(items, item)
		total += item.UnitPriceCents() * int64(item.Quantity)
	}

	return &Draft{
		State: StateDraft,
		Order: domain.Order{
			UserID: userID,
			CartID: cart.ID,
			Items:  items,
			AddressInfo: domain.AddressInfo{
				AddressID: addr.ID,
				Address:   addr.Address,
				City:      addr.City,
				Pincode:   addr.Pincode,
				Phone:     addr.Phone,
				Notes:     addr.Notes,
			},
			OrderStatus:   domain.OrderStatusPending,
			PaymentMethod: "paypal",
			PaymentStatus: domain.PaymentStatusPending,
			TotalCents:    total,
		},
	}, nil
}

// InitiatePayment authorizes the draft total with the provider and moves
// the draft to AwaitingPayment. Nothing is persisted.
func (s *Service) InitiatePayment(ctx context.Context, draft *Draft) error {
	if draft.State != StateDraft {
		return domain.ErrInvalidState
	}
	auth, err := s.provider.Authorize(ctx, draft.Order.TotalCents, s.currency)
	if err != nil {
		return fmt.Errorf("authorize payment: %w", err)
	}
	draft.PaymentID = auth.PaymentID
	draft.ApprovalURL = auth.ApprovalURL
	draft.State = StateAwaitingPayment
	return nil
}

// CapturePayment finalizes the draft: captures with the provider, persists
// the order as confirmed/paid and deletes the originating cart. Any
// provider or persistence failure moves the draft to Failed and leaves the
// cart untouched; the caller must restart from BuildDraft. A cart-delete
// failure after the order is durably stored is logged and swallowed.
func (s *Service) CapturePayment(ctx context.Context, draft *Draft, paymentID, payerID string) (*domain.Order, error) {
	if draft.State != StateAwaitingPayment {
		return nil, domain.ErrInvalidState
	}

	if err := s.provider.Capture(ctx, paymentID, payerID); err != nil {
		draft.State = StateFailed
		if errors.Is(err, domain.ErrPaymentFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	order := draft.Order
	order.OrderStatus = domain.OrderStatusConfirmed
	order.PaymentStatus = domain.PaymentStatusPaid
	order.PaymentID = paymentID
	order.PayerID = payerID

	persisted, err := s.orders.Create(ctx, order)
	if err != nil {
		draft.State = StateFailed
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := s.carts.Delete(ctx, order.CartID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("checkout: clear cart %s after order %s: %v", order.CartID, persisted.ID, err)
	}

	draft.State = StateCaptured
	return persisted, nil
}

// Cancel aborts an in-flight payment and returns the draft to Draft so the
// user can retry. Cancelling an untouched draft is a no-op.
func (s *Service) Cancel(draft *Draft) error {
	switch draft.State {
	case StateAwaitingPayment:
		draft.State = StateDraft
		draft.PaymentID = ""
		draft.ApprovalURL = ""
		return nil
	case StateDraft:
		return nil
	default:
		return domain.ErrInvalidState
	}
}
