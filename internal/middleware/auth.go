// AuraConnect | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/auraconnect/api/internal/core"
)

const ClaimsKey contextKey = "session_claims"

// SessionClaims is the decoded identity a verified session token carries.
type SessionClaims struct {
	UserID int64
	Email  string
	Name   string
}

type TokenVerifier interface {
	VerifySessionToken(
		ctx context.Context,
		token string,
	) (*SessionClaims, error)
}

// Authenticator is the authorization gate for routes that require identity.
// It reads the session cookie, verifies the token, and attaches the claims
// to the request context; any failure ends the request with a 401.
func Authenticator(
	verifier TokenVerifier,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionTokenFromRequest(r, cookieName)

			if token == "" {
				core.Unauthorized(w, "Unauthorized. Please log in.")
				return
			}

			claims, err := verifier.VerifySessionToken(r.Context(), token)
			if err != nil {
				// Expired vs tampered is logged, never surfaced.
				switch {
				case errors.Is(err, core.ErrTokenExpired):
					slog.Debug("session token expired", "path", r.URL.Path)
				default:
					slog.Debug("session token rejected",
						"path", r.URL.Path,
						"error", err,
					)
				}
				core.Unauthorized(w, "Invalid or expired token.")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionTokenFromRequest extracts the raw token from the session cookie,
// or returns "" when the cookie is absent.
func SessionTokenFromRequest(r *http.Request, cookieName string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func GetClaims(ctx context.Context) *SessionClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*SessionClaims); ok {
		return claims
	}
	return nil
}

func GetUserID(ctx context.Context) int64 {
	if claims := GetClaims(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

func IsAuthenticated(ctx context.Context) bool {
	return GetClaims(ctx) != nil
}
