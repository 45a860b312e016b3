package auth

import (
	"testing"
	"time"

	"github.com/fleetcard/authengine/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string) *TokenService {
	return NewTokenService(config.AuthConfig{
		JWTSecret:    secret,
		JWTIssuer:    "authengine",
		JWTExpiresIn: time.Hour,
	})
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newService("s3cret")

	token, err := svc.GenerateToken("reporting")
	require.NoError(t, err)

	subject, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reporting", subject)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := newService("s3cret")
	good, err := svc.GenerateToken("reporting")
	require.NoError(t, err)

	expired := newService("s3cret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken("reporting")
	require.NoError(t, err)

	otherIssuer := NewTokenService(config.AuthConfig{JWTSecret: "s3cret", JWTIssuer: "someone-else", JWTExpiresIn: time.Hour})
	wrongIssuer, err := otherIssuer.GenerateToken("reporting")
	require.NoError(t, err)

	wrongKey, err := newService("other").GenerateToken("reporting")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x", Issuer: "authengine"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expiredToken},
		{name: "wrong issuer", token: wrongIssuer},
		{name: "wrong key", token: wrongKey},
		{name: "none algorithm", token: noneAlg},
		{name: "garbage", token: "not-a-token"},
		{name: "tampered", token: good + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenService_Disabled(t *testing.T) {
	svc := newService("")
	assert.False(t, svc.Enabled())

	_, err := svc.GenerateToken("reporting")
	assert.Error(t, err)

	_, err = svc.ParseToken("anything")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = newService("s3cret").GenerateToken("")
	assert.Error(t, err)
}
