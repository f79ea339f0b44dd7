package service

import (
	"context"
	"errors"

	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

// RoleService resolves roles from the user collection. Results are never cached.
type RoleService struct {
	users repository.Collection
}

// NewRoleService builds the service.
func NewRoleService(users repository.Collection) *RoleService {
	return &RoleService{users: users}
}

var _ auth.RoleResolver = (*RoleService)(nil)

// Resolve returns the stored role for email, or auth.ErrRoleNotFound when the
// user is missing or the role field is absent or unrecognised.
func (s *RoleService) Resolve(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.users.FindOne(ctx, query.UserByEmail(email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", auth.ErrRoleNotFound
	}
	role, ok := domain.ParseRole(user.String(domain.UserFieldRole))
	if !ok {
		return "", auth.ErrRoleNotFound
	}
	return role, nil
}

// HasRole reports whether email currently holds role. Unknown users hold none.
func (s *RoleService) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	got, err := s.Resolve(ctx, email)
	if errors.Is(err, auth.ErrRoleNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return got == role, nil
}
