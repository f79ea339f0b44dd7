package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

// ErrUnknownUser is returned when a token is requested for an unregistered email.
var ErrUnknownUser = errors.New("no user registered with this email")

// TokenService issues identity tokens to registered users. Credentials are
// checked upstream; issuance only requires the user document to exist.
type TokenService struct {
	users    repository.Collection
	tokenMgr *auth.TokenManager
}

// NewTokenService builds the service.
func NewTokenService(users repository.Collection, tokenMgr *auth.TokenManager) *TokenService {
	return &TokenService{users: users, tokenMgr: tokenMgr}
}

// Issue signs a token for email if a user with that email exists.
func (s *TokenService) Issue(ctx context.Context, email string) (string, time.Time, error) {
	if email == "" {
		return "", time.Time{}, ErrUnknownUser
	}
	user, err := s.users.FindOne(ctx, query.UserByEmail(email))
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, ErrUnknownUser
	}
	return s.tokenMgr.GenerateToken(email)
}
