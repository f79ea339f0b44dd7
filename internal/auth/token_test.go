package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(now time.Time) *TokenManager {
	tm := NewTokenManager("test-secret", 10*24*time.Hour)
	tm.now = func() time.Time { return now }
	return tm
}

func TestTokenRoundTrip(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tm := newTestManager(issued)

	token, exp, err := tm.GenerateToken("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(10*24*time.Hour), exp)

	email, err := tm.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	tm.now = func() time.Time { return issued.Add(10*24*time.Hour - time.Minute) }
	email, err = tm.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	tm.now = func() time.Time { return issued.Add(10*24*time.Hour + time.Second) }
	_, err = tm.Verify("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyMalformedHeader(t *testing.T) {
	tm := newTestManager(time.Now())
	token, _, err := tm.GenerateToken("a@x.com")
	require.NoError(t, err)

	for _, header := range []string{"", "Bearer", "Bearer ", token, "Basic " + token} {
		_, err := tm.Verify(header)
		assert.ErrorIs(t, err, ErrUnauthenticated, "header=%q", header)
	}

	email, err := tm.Verify("bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	now := time.Now()
	other := NewTokenManager("other-secret", time.Hour)
	token, _, err := other.GenerateToken("a@x.com")
	require.NoError(t, err)

	_, err = newTestManager(now).Verify("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = newTestManager(now).Verify("Bearer not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	claims := &Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = newTestManager(time.Now()).Verify("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyRequiresEmailAndExpiry(t *testing.T) {
	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Email: "a@x.com"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tm := newTestManager(time.Now())
	for _, token := range []string{noEmail, noExpiry} {
		_, err := tm.Verify("Bearer " + token)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	}
}
