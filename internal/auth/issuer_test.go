package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
)

func TestIssuerIssuesValidSession(t *testing.T) {
	tm := NewTokenManager(testSecret, 24*time.Hour)
	issuer := NewIssuer(tm, false)

	user := &domain.User{ID: "u-1", Email: "a@x.com", Role: domain.RoleAdmin}
	session, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if session.Token == "" {
		t.Fatal("Issue returned an empty token")
	}
	if session.Claims.SubjectID != "u-1" || session.Claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", session.Claims)
	}

	parsed, err := tm.Parse(session.Token)
	if err != nil {
		t.Fatalf("issued token must parse: %v", err)
	}
	if parsed.SubjectID != "u-1" || parsed.Email != "a@x.com" || parsed.Role != domain.RoleAdmin {
		t.Fatalf("parsed claims mismatch: %+v", parsed)
	}
}

func TestIssuerRefusesUnknownRole(t *testing.T) {
	issuer := NewIssuer(NewTokenManager(testSecret, time.Hour), false)

	user := &domain.User{ID: "u-1", Email: "a@x.com", Role: domain.Role("superuser")}
	if _, err := issuer.Issue(user); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestSessionCookie(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	issuer := NewIssuer(tm, true)

	session, err := issuer.Issue(&domain.User{ID: "u-1", Email: "a@x.com", Role: domain.RoleGolfer})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	cookie := issuer.Cookie(session)
	if cookie.Name != SessionCookieName {
		t.Errorf("cookie name = %q", cookie.Name)
	}
	if cookie.Value != session.Token {
		t.Error("cookie must carry the issued token")
	}
	if !cookie.HTTPOnly {
		t.Error("session cookie must be HTTP-only")
	}
	if !cookie.Secure {
		t.Error("production issuer must set Secure")
	}
	if !cookie.Expires.Equal(session.ExpiresAt) {
		t.Error("cookie expiry must match token expiry")
	}

	cleared := issuer.ExpiredCookie()
	if cleared.Value != "" || !cleared.Expires.Before(time.Now()) {
		t.Error("ExpiredCookie must clear the session cookie")
	}
}
