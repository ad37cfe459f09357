package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestToDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "passes domain errors through",
			err:        NewForbidden("admin access required"),
			wantCode:   "FORBIDDEN",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrapped domain error is unwrapped",
			err:        fmt.Errorf("fetch user: %w", NewUnauthorized("token expired")),
			wantCode:   "UNAUTHORIZED",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing row becomes not found",
			err:        pgx.ErrNoRows,
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unique violation becomes conflict",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "blogs_slug_key"},
			wantCode:   "CONFLICT",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "other postgres errors stay internal",
			err:        &pgconn.PgError{Code: "42P01"},
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown errors become internal",
			err:        errors.New("boom"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", got.Code, tc.wantCode)
			}
			if got.HTTPStatus != tc.wantStatus {
				t.Fatalf("status = %d, want %d", got.HTTPStatus, tc.wantStatus)
			}
		})
	}

	if got := ToDomainError(nil); got != nil {
		t.Fatalf("ToDomainError(nil) = %v, want nil", got)
	}
}

func TestInvalidCredentialsMessage(t *testing.T) {
	err := NewInvalidCredentials()
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if derr.Message != "invalid credentials" {
		t.Fatalf("message = %q, must not hint at the failing field", derr.Message)
	}
	if derr.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", derr.HTTPStatus)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert subscriber: %w", &pgconn.PgError{Code: "23505"})
	if !IsUniqueViolation(wrapped) {
		t.Fatalf("expected wrapped unique violation to match")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Fatalf("plain error must not match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation must not match")
	}
}
