package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	s := NewSigner("test-secret")
	token, err := s.Sign("ops@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := s.RequireRole(token, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	token, err := NewSigner("one").Sign("ops", RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = NewSigner("two").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	s := NewSigner("test-secret")
	s.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	token, err := s.Sign("ops", RoleAdmin, time.Minute)
	require.NoError(t, err)

	s.now = func() time.Time { return time.Date(2026, 1, 1, 0, 2, 0, 0, time.UTC) }
	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "ops",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewSigner("test-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireRoleForbidden(t *testing.T) {
	s := NewSigner("test-secret")
	token, err := s.Sign("viewer", "viewer", time.Hour)
	require.NoError(t, err)

	_, err = s.RequireRole(token, RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestEmptySecret(t *testing.T) {
	s := NewSigner("  ")
	_, err := s.Sign("ops", RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
	_, err = s.Verify("a.b.c")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
