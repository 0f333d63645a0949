package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/domain"
)

type stubCartService struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartService) Get(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) AddItem(_ context.Context, _, _ string, _ int) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) SetQuantity(_ context.Context, _, _ string, _ int) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, _, _ string) (*domain.Cart, error) {
	return s.cart, s.err
}

func TestAddCartItem_StockExceededMapsToConflict(t *testing.T) {
	router := newTestRouter(Deps{Auth: authedShopper(), Cart: &stubCartService{err: domain.ErrStockExceeded}})

	rec := postJSON(router, "/api/shop/cart/add", map[string]interface{}{
		"productId": "p1",
		"quantity":  5,
	}, "tok-123")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp := decodeEnvelope(t, rec); resp.Success {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
}

func TestGetCart_ReturnsDenormalizedLines(t *testing.T) {
	cart := &domain.Cart{
		ID:     "cart-1",
		UserID: "u1",
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 2, Title: "Shirt", PriceCents: 1000, SalePriceCents: 800},
		},
	}
	router := newTestRouter(Deps{Auth: authedShopper(), Cart: &stubCartService{cart: cart}})

	req := httptest.NewRequest(http.MethodGet, "/api/shop/cart/get", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Success {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
}

func TestRemoveCartItem_RequiresAuth(t *testing.T) {
	router := newTestRouter(Deps{Auth: authedShopper(), Cart: &stubCartService{cart: &domain.Cart{}}})

	req := httptest.NewRequest(http.MethodDelete, "/api/shop/cart/p1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
