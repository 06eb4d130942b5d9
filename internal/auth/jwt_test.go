// AuraConnect | 2026
// jwt_test.go

package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auraconnect/api/internal/config"
	"github.com/auraconnect/api/internal/core"
)

func testJWTConfig(expire time.Duration) config.JWTConfig {
	return config.JWTConfig{
		Secret:        "test-secret-which-is-long-enough",
		SessionExpire: expire,
		Issuer:        "auraconnect",
		CookieName:    "token",
	}
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager(config.JWTConfig{SessionExpire: time.Hour})
	require.Error(t, err)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	m, err := NewJWTManager(testJWTConfig(24 * time.Hour))
	require.NoError(t, err)

	token, err := m.CreateSessionToken(SessionClaims{
		UserID: 42,
		Email:  "ada@example.com",
		Name:   "Ada",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.VerifySessionToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
}

func TestVerifySessionToken_Tampered(t *testing.T) {
	m, err := NewJWTManager(testJWTConfig(24 * time.Hour))
	require.NoError(t, err)

	token, err := m.CreateSessionToken(SessionClaims{UserID: 1, Email: "a@b.co", Name: "A"})
	require.NoError(t, err)

	// Flip part of the signature.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.VerifySessionToken(context.Background(), tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTManager(testJWTConfig(24 * time.Hour))
	require.NoError(t, err)

	other, err := NewJWTManager(config.JWTConfig{
		Secret:        "a-completely-different-secret",
		SessionExpire: 24 * time.Hour,
		Issuer:        "auraconnect",
	})
	require.NoError(t, err)

	token, err := issuer.CreateSessionToken(SessionClaims{UserID: 1, Email: "a@b.co", Name: "A"})
	require.NoError(t, err)

	_, err = other.VerifySessionToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifySessionToken_Expired(t *testing.T) {
	// A negative expiry mints a token that is already past its exp claim.
	m, err := NewJWTManager(testJWTConfig(-time.Hour))
	require.NoError(t, err)

	token, err := m.CreateSessionToken(SessionClaims{UserID: 1, Email: "a@b.co", Name: "A"})
	require.NoError(t, err)

	_, err = m.VerifySessionToken(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifySessionToken_Malformed(t *testing.T) {
	m, err := NewJWTManager(testJWTConfig(24 * time.Hour))
	require.NoError(t, err)

	for _, bad := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := m.VerifySessionToken(context.Background(), bad)
		assert.ErrorIs(t, err, core.ErrTokenInvalid, "token %q", bad)
	}
}
