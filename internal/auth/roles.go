package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/domain"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util/errorutil"
)

// ErrRoleNotFound means the user is unknown or has no recognised role.
var ErrRoleNotFound = errors.New("role not found")

// RoleResolver reads a user's current role from the store.
type RoleResolver interface {
	Resolve(ctx context.Context, email string) (domain.Role, error)
}

// RequireRole admits callers whose stored role equals required. The role is
// read on every request; the token never carries it.
func RequireRole(resolver RoleResolver, required domain.Role) Stage {
	return Stage{check: func(c *fiber.Ctx, id Identity) error {
		role, err := resolver.Resolve(c.UserContext(), id.Email())
		if errors.Is(err, ErrRoleNotFound) {
			return apperrors.NewForbidden("forbidden access")
		}
		if err != nil {
			return err
		}
		if role != required {
			return apperrors.NewForbidden("forbidden access")
		}
		return nil
	}}
}

// RequireOwner admits callers whose email equals the named path parameter.
func RequireOwner(param string) Stage {
	return Stage{check: func(c *fiber.Ctx, id Identity) error {
		if id.email == "" || c.Params(param) != id.email {
			return apperrors.NewForbidden("forbidden access")
		}
		return nil
	}}
}
