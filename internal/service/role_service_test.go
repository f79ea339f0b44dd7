package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

func seedUsers(t *testing.T, users repository.Collection, docs ...domain.Document) {
	t.Helper()
	for _, doc := range docs {
		_, err := users.InsertOne(context.Background(), doc)
		require.NoError(t, err)
	}
}

func TestRoleServiceResolve(t *testing.T) {
	users := repository.NewMemoryCollection()
	seedUsers(t, users,
		domain.User{Email: "admin@x.com", Role: domain.RoleAdmin}.Document(),
		domain.User{Email: "seller@x.com", Role: domain.RoleSeller}.Document(),
		domain.Document{"email": "norole@x.com"},
		domain.Document{"email": "odd@x.com", "role": "superuser"},
	)
	svc := NewRoleService(users)
	ctx := context.Background()

	role, err := svc.Resolve(ctx, "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	for _, email := range []string{"nobody@x.com", "norole@x.com", "odd@x.com"} {
		_, err := svc.Resolve(ctx, email)
		assert.ErrorIs(t, err, auth.ErrRoleNotFound, email)
	}

	isSeller, err := svc.HasRole(ctx, "seller@x.com", domain.RoleSeller)
	require.NoError(t, err)
	assert.True(t, isSeller)

	isAdmin, err := svc.HasRole(ctx, "nobody@x.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestRoleServiceReadsCurrentRole(t *testing.T) {
	users := repository.NewMemoryCollection()
	seedUsers(t, users, domain.User{ID: "u1", Email: "a@x.com", Role: domain.RoleSeller}.Document())
	svc := NewRoleService(users)
	ctx := context.Background()

	role, err := svc.Resolve(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSeller, role)

	_, err = users.UpdateOne(ctx, query.ByID("u1"), domain.Document{"role": string(domain.RoleUser)}, false)
	require.NoError(t, err)

	role, err = svc.Resolve(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, role)
}

func TestTokenServiceIssue(t *testing.T) {
	users := repository.NewMemoryCollection()
	seedUsers(t, users, domain.User{Email: "a@x.com", Role: domain.RoleUser}.Document())
	tm := auth.NewTokenManager("secret", 10*24*time.Hour)
	svc := NewTokenService(users, tm)
	ctx := context.Background()

	token, exp, err := svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*24*time.Hour), exp, time.Minute)

	email, err := tm.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	_, _, err = svc.Issue(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUnknownUser)

	_, _, err = svc.Issue(ctx, "")
	assert.ErrorIs(t, err, ErrUnknownUser)
}
