package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/domain"
	"storefront-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type stubAuthService struct {
	user     *domain.User
	token    string
	loginErr error
}

func (s *stubAuthService) Register(_ context.Context, in auth.RegisterInput) (*domain.User, error) {
	return &domain.User{ID: "u1", UserName: in.UserName, Email: in.Email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error { return nil }

func (s *stubAuthService) LookupByToken(_ context.Context, token string) (*domain.User, error) {
	if s.user != nil && token == s.token {
		return s.user, nil
	}
	return nil, auth.ErrInvalidToken
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return buildRouter(testLogger(), nil, deps, "http://localhost:5173")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestLoginHandler_Success(t *testing.T) {
	authSvc := &stubAuthService{
		user:  &domain.User{ID: "u1", UserName: "shopper", Email: "user@example.com", Role: domain.RoleUser},
		token: "tok-123",
	}
	router := newTestRouter(Deps{Auth: authSvc})

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "secretpass1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
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

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	router := newTestRouter(Deps{Auth: &stubAuthService{loginErr: auth.ErrInvalidCredentials}})

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if resp := decodeEnvelope(t, rec); resp.Success {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	router := newTestRouter(Deps{Auth: &stubAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authSvc := &stubAuthService{
		user:  &domain.User{ID: "u1", UserName: "shopper", Role: domain.RoleUser},
		token: "tok-123",
	}
	router := newTestRouter(Deps{Auth: authSvc})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminMiddleware_ForbiddenForShopper(t *testing.T) {
	authSvc := &stubAuthService{
		user:  &domain.User{ID: "u1", Role: domain.RoleUser},
		token: "tok-123",
	}
	router := newTestRouter(Deps{Auth: authSvc})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/get", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}
