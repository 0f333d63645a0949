package payment

import (
	"context"
	"fmt"
	"sync"

	"storefront-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockProvider is an in-memory stand-in for the sandbox payment gateway.
// Authorize hands out a payment id and a fake approval URL; Capture only
// succeeds for ids this provider issued.
type MockProvider struct {
	mu          sync.Mutex
	authorized  map[string]string // paymentID -> formatted amount
	captured    map[string]string // paymentID -> payerID
	ApproveBase string
	FailCapture bool
}

func NewMock() *MockProvider {
	return &MockProvider{
		authorized:  make(map[string]string),
		captured:    make(map[string]string),
		ApproveBase: "https://sandbox.payments.example/approve",
	}
}

func (m *MockProvider) Authorize(_ context.Context, amountCents int64, currency string) (*Authorization, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidInput
	}
	id := "PAYID-" + uuid.NewString()

	// The gateway wire format wants a decimal amount string, not cents.
	amount := decimal.New(amountCents, -2).StringFixed(2)

	m.mu.Lock()
	m.authorized[id] = amount + " " + currency
	m.mu.Unlock()

	return &Authorization{
		PaymentID:   id,
		ApprovalURL: fmt.Sprintf("%s?paymentId=%s", m.ApproveBase, id),
	}, nil
}

func (m *MockProvider) Capture(_ context.Context, paymentID, payerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailCapture {
		return domain.ErrPaymentFailed
	}
	if _, ok := m.authorized[paymentID]; !ok {
		return fmt.Errorf("%w: unknown payment id %s", domain.ErrPaymentFailed, paymentID)
	}
	if payerID == "" {
		return fmt.Errorf("%w: missing payer id", domain.ErrPaymentFailed)
	}
	m.captured[paymentID] = payerID
	return nil
}

// Captured reports whether paymentID has been captured, for tests.
func (m *MockProvider) Captured(paymentID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.captured[paymentID]
	return ok
}
