package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/domain"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util"
)

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return errors.New("duplicate email")
		}
	}
	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func testAuthConfig(admins ...string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:    "secret",
		TokenTTLDays: 7,
		BcryptCost:   4,
		AdminEmails:  admins,
	}
}

func domainStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return de.HTTPStatus, de.Message
}

func TestAuthService_Register_AllowListRejection(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(testAuthConfig("admin@example.com"), repo)

	_, _, _, err := svc.Register(context.Background(), "intruder@example.com", "password123", nil)
	if err == nil {
		t.Fatalf("expected rejection for non-allow-listed email")
	}
	if status, _ := domainStatus(t, err); status != 403 {
		t.Fatalf("expected 403, got %d", status)
	}
	if len(repo.users) != 0 {
		t.Fatalf("no identity must be created on rejection, found %d", len(repo.users))
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(testAuthConfig("admin@example.com"), repo)

	user, token, _, err := svc.Register(context.Background(), "Admin@Example.com", "password123", nil)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a credential")
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("allow-listed registration must grant ADMIN, got %s", user.Role)
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("minted token failed verification: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("embedded role must match stored role, got %s", claims.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(testAuthConfig("admin@example.com"), repo)

	first, _, _, err := svc.Register(context.Background(), "admin@example.com", "password123", nil)
	if err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	originalHash := first.PasswordHash

	_, _, _, err = svc.Register(context.Background(), "admin@example.com", "different-pass", nil)
	if err == nil {
		t.Fatalf("expected conflict on duplicate registration")
	}
	if status, _ := domainStatus(t, err); status != 409 {
		t.Fatalf("expected 409, got %d", status)
	}
	if repo.users[first.ID].PasswordHash != originalHash {
		t.Fatalf("duplicate registration must not alter the stored hash")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := NewAuthService(testAuthConfig("admin@example.com"), newMemUserRepo())

	for _, pair := range [][2]string{{"", "pass"}, {"admin@example.com", ""}} {
		_, _, _, err := svc.Register(context.Background(), pair[0], pair[1], nil)
		if err == nil {
			t.Fatalf("expected validation error for %q/%q", pair[0], pair[1])
		}
		if status, _ := domainStatus(t, err); status != 400 {
			t.Fatalf("expected 400, got %d", status)
		}
	}
}

func TestAuthService_Login_UndifferentiatedFailure(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(testAuthConfig("admin@example.com"), repo)

	if _, _, _, err := svc.Register(context.Background(), "admin@example.com", "password123", nil); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, _, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, _, errWrongPass := svc.Login(context.Background(), "admin@example.com", "wrong-pass")

	_, msgUnknown := domainStatus(t, errUnknown)
	statusWrong, msgWrongPass := domainStatus(t, errWrongPass)

	if statusWrong != 401 {
		t.Fatalf("expected 401, got %d", statusWrong)
	}
	if msgUnknown != msgWrongPass {
		t.Fatalf("login failures must be indistinguishable: %q vs %q", msgUnknown, msgWrongPass)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(testAuthConfig("admin@example.com"), repo)

	if _, _, _, err := svc.Register(context.Background(), "admin@example.com", "password123", nil); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, token, _, err := svc.Login(context.Background(), "admin@example.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("token failed verification: %v", err)
	}
	if claims.Role != user.Role {
		t.Fatalf("embedded role %s must equal stored role %s", claims.Role, user.Role)
	}
}

func TestAuthService_Me(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(testAuthConfig("admin@example.com"), repo)

	user, _, _, err := svc.Register(context.Background(), "admin@example.com", "password123", nil)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := svc.Me(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if got.Email != "admin@example.com" {
		t.Fatalf("unexpected email: %s", got.Email)
	}

	delete(repo.users, user.ID)
	_, err = svc.Me(context.Background(), user.ID)
	if err == nil {
		t.Fatalf("expected not found for deleted account")
	}
	if status, _ := domainStatus(t, err); status != 404 {
		t.Fatalf("expected 404, got %d", status)
	}
}
