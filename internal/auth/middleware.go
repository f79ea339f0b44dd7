package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/marketplace-service/pkg/util/errorutil"
)

const identityKey = "auth_identity"

// Identity is the caller bound by Protect after token verification.
type Identity struct {
	email string
}

// Email returns the verified email claim.
func (i Identity) Email() string {
	return i.email
}

// Stage is an authorization check that runs after authentication. Stages are
// built only by this package (RequireRole, RequireOwner) and run only inside
// AuthMiddleware.Protect, so no check can observe an unverified caller.
type Stage struct {
	check func(c *fiber.Ctx, id Identity) error
}

// AuthMiddleware validates bearer tokens and binds the caller's identity.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Protect authenticates the request and then runs stages in order. The first
// failing stage short-circuits the request.
func (m *AuthMiddleware) Protect(stages ...Stage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := m.tokens.Verify(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				return apperrors.NewUnauthenticated("unauthorized access", http.StatusUnauthorized)
			}
			return apperrors.NewUnauthenticated("forbidden access", http.StatusForbidden)
		}

		id := Identity{email: email}
		c.Locals(identityKey, id)

		for _, stage := range stages {
			if stage.check == nil {
				return apperrors.NewForbidden("forbidden access")
			}
			if err := stage.check(c, id); err != nil {
				return err
			}
		}
		return c.Next()
	}
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey).(Identity)
	return id, ok
}
