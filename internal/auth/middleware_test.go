package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v2"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

func newTestApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Message)
		},
	})

	mw := NewAuthMiddleware(tm)
	app.Get("/whoami", mw.Handle, func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.SendString(claims.SubjectID + ":" + string(claims.Role))
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, modify func(*http.Request)) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if modify != nil {
		modify(req)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestMiddlewareMissingCredentials(t *testing.T) {
	app := newTestApp(NewTokenManager(testSecret, time.Hour))

	status, _ := doRequest(t, app, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", status)
	}
}

func TestMiddlewareBearerHeader(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	token, _, err := tm.Generate("u-1", "a@x.com", domain.RoleGolfer)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	status, body := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, body)
	}
	if body != "u-1:golfer" {
		t.Fatalf("unexpected identity: %q", body)
	}
}

func TestMiddlewareCookieFallback(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	token, _, err := tm.Generate("u-2", "b@x.com", domain.RoleInstructor)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	status, body := doRequest(t, app, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 via cookie, got %d (%s)", status, body)
	}
}

func TestMiddlewareHeaderWinsOverCookie(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	headerToken, _, err := tm.Generate("header-user", "h@x.com", domain.RoleGolfer)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	cookieToken, _, err := tm.Generate("cookie-user", "c@x.com", domain.RoleGolfer)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	status, body := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+headerToken)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookieToken})
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.HasPrefix(body, "header-user:") {
		t.Fatalf("header must take priority over cookie, got %q", body)
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		SubjectID: "u-1",
		Role:      domain.RoleGolfer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	status, body := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+expired)
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", status)
	}
	if body != "token expired" {
		t.Fatalf("expired tokens get a distinct message, got %q", body)
	}
}

func TestMiddlewareTamperedToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newTestApp(tm)

	forged, _, err := NewTokenManager("attacker-secret", time.Hour).
		Generate("u-1", "a@x.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	status, body := doRequest(t, app, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+forged)
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %d", status)
	}
	if body != "invalid token" {
		t.Fatalf("forged tokens get the generic message, got %q", body)
	}
}
