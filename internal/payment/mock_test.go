package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront-api/internal/domain"
)

func TestMockAuthorizeFormatsAmount(t *testing.T) {
	p := NewMock()
	auth, err := p.Authorize(context.Background(), 1600, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.PaymentID == "" {
		t.Fatal("expected a payment id")
	}
	if !strings.Contains(auth.ApprovalURL, auth.PaymentID) {
		t.Fatalf("approval url %q should reference payment id", auth.ApprovalURL)
	}
	if got := p.authorized[auth.PaymentID]; got != "16.00 USD" {
		t.Fatalf("expected amount 16.00 USD, got %q", got)
	}
}

func TestMockAuthorizeRejectsZeroAmount(t *testing.T) {
	p := NewMock()
	_, err := p.Authorize(context.Background(), 0, "USD")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestMockCaptureOnlyKnownPayments(t *testing.T) {
	p := NewMock()
	if err := p.Capture(context.Background(), "PAYID-unknown", "payer"); !errors.Is(err, domain.ErrPaymentFailed) {
		t.Fatalf("expected payment failed, got %v", err)
	}

	auth, err := p.Authorize(context.Background(), 500, "USD")
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if err := p.Capture(context.Background(), auth.PaymentID, "payer-1"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !p.Captured(auth.PaymentID) {
		t.Fatal("payment should be recorded as captured")
	}
}
