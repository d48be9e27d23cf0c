package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("nope")
	mapped := ToDomainError(original)
	if mapped.Code != "FORBIDDEN" || mapped.HTTPStatus != http.StatusForbidden {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("pgx.ErrNoRows should map to NOT_FOUND, got %+v", mapped)
	}
}

func TestToDomainErrorUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown errors should map to INTERNAL_ERROR, got %+v", mapped)
	}
	if mapped.Message != "internal server error" {
		t.Fatalf("internal detail must not leak, got %q", mapped.Message)
	}
}

func TestAuthStatusCodesAreDistinct(t *testing.T) {
	unauthenticated := ToDomainError(NewUnauthenticated("invalid token"))
	forbidden := ToDomainError(NewForbidden("insufficient role"))

	if unauthenticated.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("unauthenticated must be 401, got %d", unauthenticated.HTTPStatus)
	}
	if forbidden.HTTPStatus != http.StatusForbidden {
		t.Fatalf("forbidden must be 403, got %d", forbidden.HTTPStatus)
	}
}

func TestInvalidRoleIsServerFault(t *testing.T) {
	mapped := ToDomainError(NewInvalidRole("superuser"))
	if mapped.Code != "INVALID_ROLE" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("invalid role must be a 500-class fault, got %+v", mapped)
	}
	if mapped.Message != "internal server error" {
		t.Fatalf("the offending role must not leak to clients, got %q", mapped.Message)
	}
}

func TestInvalidCredentialsIsGeneric(t *testing.T) {
	mapped := ToDomainError(NewInvalidCredentials())
	if mapped.HTTPStatus != http.StatusUnauthorized || mapped.Message != "invalid credentials" {
		t.Fatalf("unexpected invalid-credentials shape: %+v", mapped)
	}
}
