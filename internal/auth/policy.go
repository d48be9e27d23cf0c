package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Authorize decides whether claims may perform an action gated by
// requiredRoles and, when resourceOwnerID is non-empty, targeting that
// owner's data. Pure predicate: deterministic, no side effects.
//
// Admin passes both gates unconditionally. Every other role must be a
// member of requiredRoles (when non-empty) AND, when an owner id is given,
// match it with its own subject id.
func Authorize(claims *Claims, requiredRoles []domain.Role, resourceOwnerID string) Decision {
	if claims == nil || !claims.Role.Valid() {
		return Deny
	}
	if claims.Role == domain.RoleAdmin {
		return Allow
	}

	if len(requiredRoles) > 0 {
		allowed := false
		for _, role := range requiredRoles {
			if claims.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return Deny
		}
	}

	if resourceOwnerID != "" && claims.SubjectID != resourceOwnerID {
		return Deny
	}

	return Allow
}

// OwnerExtractor derives the resource owner id from the request. Routes
// supply one per ownership-gated endpoint.
type OwnerExtractor func(c *fiber.Ctx) string

// OwnerFromParam extracts the owner id from a path parameter.
func OwnerFromParam(name string) OwnerExtractor {
	return func(c *fiber.Ctx) string {
		return c.Params(name)
	}
}

// RequireRoles gates a route on the role set. Runs after AuthMiddleware.
func RequireRoles(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("missing credentials")
		}
		if Authorize(claims, roles, "") != Allow {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireOwnership gates a route on both the role set and ownership of the
// targeted resource.
func RequireOwnership(extract OwnerExtractor, roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("missing credentials")
		}
		if Authorize(claims, roles, extract(c)) != Allow {
			return apperrors.NewForbidden("not permitted")
		}
		return c.Next()
	}
}
