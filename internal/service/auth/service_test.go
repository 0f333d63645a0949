package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-api/internal/domain"
	tokenrepo "storefront-api/internal/repository/token"
)

// memoryUserRepo is a lightweight in-memory user repository for tests.
type memoryUserRepo struct {
	byEmail map[string]domain.User
}

type memoryTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]domain.User)}
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (r *memoryUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	clone := u
	if clone.ID == "" {
		clone.ID = "user-" + u.Email
	}
	r.byEmail[clone.Email] = clone
	return &clone, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		clone := u
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryTokenRepo) Create(_ context.Context, token tokenrepo.Token) error {
	if _, exists := r.tokens[token.Token]; exists {
		return domain.ErrAlreadyExists
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *memoryTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := t
	return &clone, nil
}

func (r *memoryTokenRepo) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

func TestRegisterAndLogin_SucceedsWithTrimmedPassword(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo(), time.Hour)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		UserName: "shopper",
		Email:    "User@Example.com",
		Password: " secretpass1 ", // includes whitespace
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if u == nil || u.Email != "user@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, u.Role)
	}

	logged, token, err := svc.Login(ctx, "user@example.com", "secretpass1")
	if err != nil {
		t.Fatalf("login failed with trimmed password: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty access token")
	}
	if logged.ID != u.ID {
		t.Fatalf("login returned user %q, want %q", logged.ID, u.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo(), time.Hour)
	ctx := context.Background()

	in := RegisterInput{UserName: "shopper", Email: "user@example.com", Password: "secretpass1"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, in); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo(), time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{
		UserName: "shopper",
		Email:    "user@example.com",
		Password: "short",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo(), time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		UserName: "shopper",
		Email:    "user@example.com",
		Password: "secretpass1",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "user@example.com", "wrongpass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "missing@example.com", "secretpass1"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing user, got %v", err)
	}
}

func TestLookupByToken(t *testing.T) {
	tokens := newMemoryTokenRepo()
	svc := New(newMemoryUserRepo(), tokens, time.Hour)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		UserName: "shopper",
		Email:    "user@example.com",
		Password: "secretpass1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	_, token, err := svc.Login(ctx, "user@example.com", "secretpass1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	got, err := svc.LookupByToken(ctx, token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("lookup returned user %q, want %q", got.ID, u.ID)
	}

	if _, err := svc.LookupByToken(ctx, "bogus"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLookupByToken_ExpiredTokenIsDeleted(t *testing.T) {
	tokens := newMemoryTokenRepo()
	svc := New(newMemoryUserRepo(), tokens, time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		UserName: "shopper",
		Email:    "user@example.com",
		Password: "secretpass1",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, token, err := svc.Login(ctx, "user@example.com", "secretpass1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	expired := tokens.tokens[token]
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	tokens.tokens[token] = expired

	if _, err := svc.LookupByToken(ctx, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
	if _, ok := tokens.tokens[token]; ok {
		t.Fatal("expected expired token to be deleted")
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo(), time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		UserName: "shopper",
		Email:    "user@example.com",
		Password: "secretpass1",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, token, err := svc.Login(ctx, "user@example.com", "secretpass1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.LookupByToken(ctx, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
}
