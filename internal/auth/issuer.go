package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
)

// ErrInvalidRole blocks issuance when a stored account carries a role the
// policy engine cannot interpret. Issuance fails entirely; no token with an
// unknown role is ever minted.
var ErrInvalidRole = errors.New("stored role is not a known role")

// SessionCookieName is the cookie the authenticator falls back to when no
// bearer header is present.
const SessionCookieName = "token"

// IssuedSession bundles everything the transport layer returns to a client
// after a successful login.
type IssuedSession struct {
	Claims    Claims
	Token     string
	ExpiresAt time.Time
}

// Issuer mints sessions for verified users.
type Issuer struct {
	tokens *TokenManager
	secure bool
}

// NewIssuer builds an issuer. secure controls the cookie Secure attribute
// and should be true outside local development.
func NewIssuer(tokens *TokenManager, secure bool) *Issuer {
	return &Issuer{tokens: tokens, secure: secure}
}

// Issue validates the stored role and mints a signed session token from the
// user's stable fields.
func (i *Issuer) Issue(user *domain.User) (*IssuedSession, error) {
	if !user.Role.Valid() {
		return nil, ErrInvalidRole
	}

	token, expiresAt, err := i.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &IssuedSession{
		Claims: Claims{
			SubjectID: user.ID,
			Email:     user.Email,
			Role:      user.Role,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Cookie builds the session cookie for an issued token: HTTP-only,
// SameSite=None for the cross-site frontend, expiring with the token.
func (i *Issuer) Cookie(session *IssuedSession) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   i.secure,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	}
}

// ExpiredCookie returns a cookie directive that clears the session cookie.
// The token itself stays valid until natural expiry; there is no revocation
// store.
func (i *Issuer) ExpiredCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   i.secure,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	}
}
