// Package auth issues and verifies the operator tokens that guard lead data.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin may read captured leads.
const RoleAdmin = "admin"

const issuer = "advisorpilot"

var (
	ErrMissingSecret = errors.New("jwt secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
	ErrForbidden     = errors.New("insufficient role")
)

// Claims represents the identity contained in a JWT.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Signer signs and verifies HS256 tokens with one shared secret.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// NewSigner returns a Signer. An empty secret yields a Signer that rejects
// every token and refuses to sign.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(strings.TrimSpace(secret)), now: time.Now}
}

// Sign issues a token for subject with the given role and lifetime.
func (s *Signer) Sign(subject, role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("subject is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := s.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify parses a token and returns its claims.
func (s *Signer) Verify(token string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrMissingSecret
	}
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// RequireRole verifies token and checks the role claim.
func (s *Signer) RequireRole(token, role string) (Claims, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.Role != role {
		return Claims{}, ErrForbidden
	}
	return claims, nil
}
