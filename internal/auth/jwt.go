// Package auth issues and verifies the bearer tokens of the read API.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetcard/authengine/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService signs and parses HS256 tokens.
type TokenService struct {
	now       func() time.Time
	issuer    string
	secretKey []byte
	expiresIn time.Duration
}

// NewTokenService creates a TokenService from the auth configuration
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		issuer:    cfg.JWTIssuer,
		expiresIn: cfg.JWTExpiresIn,
		now:       time.Now,
	}
}

// Enabled reports whether a signing secret is configured.
func (s *TokenService) Enabled() bool {
	return len(s.secretKey) > 0
}

// GenerateToken issues a token for subject, for example a reporting client id.
func (s *TokenService) GenerateToken(subject string) (string, error) {
	if !s.Enabled() {
		return "", errors.New("jwt secret is not configured")
	}
	if subject == "" {
		return "", errors.New("token subject cannot be empty")
	}

	now := s.now()
	expTime := now.Add(s.expiresIn)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expTime),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("JWT generated", "subject", subject, "expires_at", expTime.UTC().Format(time.RFC3339))
	return tokenStr, nil
}

// ParseToken verifies tokenStr and returns its subject.
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	if !s.Enabled() {
		return "", ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	slog.Debug("JWT parsed successfully", "subject", claims.Subject)
	return claims.Subject, nil
}
