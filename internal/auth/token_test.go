package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, exp, err := tm.GenerateToken("user-1", "admin@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if remaining := time.Until(exp); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("secret", time.Nanosecond)

	token, _, err := tm.GenerateToken("user-1", "admin@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := tm.ParseToken(token); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).GenerateToken("user-1", "a@b.c", domain.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := NewTokenManager("secret-b", time.Hour).ParseToken(token); err != ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	if _, err := tm.ParseToken("not-a-token"); err != ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	_, exp, err := tm.GenerateToken("user-1", "a@b.c", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if remaining := time.Until(exp); remaining < 7*24*time.Hour-time.Minute {
		t.Fatalf("expected 7 day validity, got %v", remaining)
	}
}
