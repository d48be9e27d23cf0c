package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

const claimsKey = "auth_claims"

// AuthMiddleware validates session tokens and attaches claims to the
// request. It performs no I/O: identity is taken from the verified token,
// not re-read from the store.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Credential sources
// are checked in priority order: bearer header first, session cookie second.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	raw := bearerToken(c)
	if raw == "" {
		raw = c.Cookies(SessionCookieName)
	}
	if raw == "" {
		return apperrors.NewUnauthenticated("missing credentials")
	}

	claims, err := m.tokens.Parse(raw)
	if err != nil {
		// Same status either way; only expiry gets a distinct message so
		// clients know to re-login rather than treat the token as forged.
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewUnauthenticated("token expired")
		}
		return apperrors.NewUnauthenticated("invalid token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ClaimsFromContext retrieves the authenticated identity. This is the only
// way downstream code learns who the caller is.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
