package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/domain"
	"storefront-api/internal/service/checkout"
)

type stubCheckoutService struct {
	draftErr   error
	captureErr error
	captured   *domain.Order
}

func (s *stubCheckoutService) BuildDraft(_ context.Context, userID, addressID string) (*checkout.Draft, error) {
	if s.draftErr != nil {
		return nil, s.draftErr
	}
	return &checkout.Draft{
		State: checkout.StateDraft,
		Order: domain.Order{
			UserID:      userID,
			CartID:      "cart-1",
			AddressInfo: domain.AddressInfo{AddressID: addressID},
			TotalCents:  1600,
		},
	}, nil
}

func (s *stubCheckoutService) InitiatePayment(_ context.Context, draft *checkout.Draft) error {
	draft.PaymentID = "PAYID-TEST"
	draft.ApprovalURL = "https://payments.example.com/approve/PAYID-TEST"
	draft.State = checkout.StateAwaitingPayment
	return nil
}

func (s *stubCheckoutService) CapturePayment(_ context.Context, draft *checkout.Draft, paymentID, payerID string) (*domain.Order, error) {
	if s.captureErr != nil {
		draft.State = checkout.StateFailed
		return nil, s.captureErr
	}
	draft.State = checkout.StateCaptured
	order := draft.Order
	order.ID = "order-1"
	order.OrderStatus = domain.OrderStatusConfirmed
	order.PaymentStatus = domain.PaymentStatusPaid
	order.PaymentID = paymentID
	order.PayerID = payerID
	s.captured = &order
	return &order, nil
}

func (s *stubCheckoutService) Cancel(draft *checkout.Draft) error {
	if draft.State != checkout.StateAwaitingPayment && draft.State != checkout.StateDraft {
		return domain.ErrInvalidState
	}
	draft.State = checkout.StateDraft
	return nil
}

func authedShopper() *stubAuthService {
	return &stubAuthService{
		user:  &domain.User{ID: "u1", UserName: "shopper", Role: domain.RoleUser},
		token: "tok-123",
	}
}

func postJSON(router http.Handler, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutFlow_CreateThenCapture(t *testing.T) {
	checkoutSvc := &stubCheckoutService{}
	router := newTestRouter(Deps{Auth: authedShopper(), Checkout: checkoutSvc})

	rec := postJSON(router, "/api/shop/order/create", map[string]string{"addressId": "addr-1"}, "tok-123")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var createResp struct {
		Data createOrderResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &createResp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if createResp.Data.PaymentID == "" || createResp.Data.ApprovalURL == "" {
		t.Fatalf("expected payment id and approval url, got %+v", createResp.Data)
	}

	rec = postJSON(router, "/api/shop/order/capture", map[string]string{
		"paymentId": createResp.Data.PaymentID,
		"payerId":   "payer-1",
	}, "tok-123")
	if rec.Code != http.StatusOK {
		t.Fatalf("capture: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if checkoutSvc.captured == nil {
		t.Fatal("expected capture to reach the service")
	}
	if checkoutSvc.captured.OrderStatus != domain.OrderStatusConfirmed {
		t.Fatalf("expected confirmed order, got %q", checkoutSvc.captured.OrderStatus)
	}

	// The draft is gone after capture; a second capture is an unknown payment.
	rec = postJSON(router, "/api/shop/order/capture", map[string]string{
		"paymentId": createResp.Data.PaymentID,
		"payerId":   "payer-1",
	}, "tok-123")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second capture: expected status 400, got %d", rec.Code)
	}
}

func TestCaptureOrder_UnknownPayment(t *testing.T) {
	router := newTestRouter(Deps{Auth: authedShopper(), Checkout: &stubCheckoutService{}})

	rec := postJSON(router, "/api/shop/order/capture", map[string]string{
		"paymentId": "PAYID-UNKNOWN",
		"payerId":   "payer-1",
	}, "tok-123")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCaptureOrder_ProviderFailure(t *testing.T) {
	checkoutSvc := &stubCheckoutService{captureErr: domain.ErrPaymentFailed}
	router := newTestRouter(Deps{Auth: authedShopper(), Checkout: checkoutSvc})

	rec := postJSON(router, "/api/shop/order/create", map[string]string{"addressId": "addr-1"}, "tok-123")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d", rec.Code)
	}

	rec = postJSON(router, "/api/shop/order/capture", map[string]string{
		"paymentId": "PAYID-TEST",
		"payerId":   "payer-1",
	}, "tok-123")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	router := newTestRouter(Deps{Auth: authedShopper(), Checkout: &stubCheckoutService{draftErr: domain.ErrEmptyCart}})

	rec := postJSON(router, "/api/shop/order/create", map[string]string{"addressId": "addr-1"}, "tok-123")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCancelOrder_ReleasesDraft(t *testing.T) {
	router := newTestRouter(Deps{Auth: authedShopper(), Checkout: &stubCheckoutService{}})

	rec := postJSON(router, "/api/shop/order/create", map[string]string{"addressId": "addr-1"}, "tok-123")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d", rec.Code)
	}

	rec = postJSON(router, "/api/shop/order/cancel", map[string]string{"paymentId": "PAYID-TEST"}, "tok-123")
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(router, "/api/shop/order/capture", map[string]string{
		"paymentId": "PAYID-TEST",
		"payerId":   "payer-1",
	}, "tok-123")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("capture after cancel: expected status 400, got %d", rec.Code)
	}
}
