// Package payment defines the boundary to the external payment provider.
// The real provider authorizes an amount and later captures it against a
// payer; the storefront only ever sees the two calls below.
package payment

import "context"

// Authorization is the provider's answer to an authorize request. The
// approval URL is where the buyer completes the payment.
type Authorization struct {
	PaymentID   string `json:"paymentId"`
	ApprovalURL string `json:"approvalUrl"`
}

type Provider interface {
	Authorize(ctx context.Context, amountCents int64, currency string) (*Authorization, error)
	Capture(ctx context.Context, paymentID, payerID string) error
}
