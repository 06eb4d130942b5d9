// AuraConnect | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auraconnect/api/internal/core"
)

type stubVerifier struct {
	claims *SessionClaims
	err    error
}

func (s *stubVerifier) VerifySessionToken(
	_ context.Context,
	_ string,
) (*SessionClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func gateRequest(
	t *testing.T,
	verifier TokenVerifier,
	cookie *http.Cookie,
) (*httptest.ResponseRecorder, *SessionClaims) {
	t.Helper()

	var seen *SessionClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	Authenticator(verifier, "token")(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthenticator_MissingCookie(t *testing.T) {
	rec, seen := gateRequest(t, &stubVerifier{}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized. Please log in.")
	assert.Nil(t, seen)
}

func TestAuthenticator_RejectedToken(t *testing.T) {
	for name, err := range map[string]error{
		"expired": core.ErrTokenExpired,
		"invalid": core.ErrTokenInvalid,
		"opaque":  core.ErrUnauthorized,
	} {
		t.Run(name, func(t *testing.T) {
			rec, seen := gateRequest(
				t,
				&stubVerifier{err: err},
				&http.Cookie{Name: "token", Value: "whatever"},
			)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid or expired token.")
			assert.Nil(t, seen)
		})
	}
}

func TestAuthenticator_ValidToken(t *testing.T) {
	claims := &SessionClaims{UserID: 7, Email: "ada@example.com", Name: "Ada"}

	rec, seen := gateRequest(
		t,
		&stubVerifier{claims: claims},
		&http.Cookie{Name: "token", Value: "valid"},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(7), seen.UserID)
	assert.Equal(t, "ada@example.com", seen.Email)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetClaims(ctx))
	assert.Zero(t, GetUserID(ctx))
	assert.False(t, IsAuthenticated(ctx))

	ctx = context.WithValue(ctx, ClaimsKey, &SessionClaims{UserID: 3})
	assert.Equal(t, int64(3), GetUserID(ctx))
	assert.True(t, IsAuthenticated(ctx))
}
