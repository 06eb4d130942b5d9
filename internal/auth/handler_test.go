// AuraConnect | 2026
// handler_test.go

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auraconnect/api/internal/core"
	"github.com/auraconnect/api/internal/user"
)

func newTestRouter(t *testing.T) (http.Handler, *Service) {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, core.RunMigrations(context.Background(), db.DB, "sqlite"))

	cfg := testJWTConfig(24 * time.Hour)
	jwtManager, err := NewJWTManager(cfg)
	require.NoError(t, err)

	svc := NewService(user.NewRepository(db), jwtManager)
	handler := NewHandler(svc, jwtManager, cfg)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})

	return router, svc
}

func doJSON(
	t *testing.T,
	router http.Handler,
	method, path, body string,
	cookies ...*http.Cookie,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(
	t *testing.T,
	rec *httptest.ResponseRecorder,
) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestSignup_SetsCookieAndReturnsUser(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		`{"name":"Ada","email":"Ada@Example.COM","password":"longenough"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Signup successful!", resp.Message)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "Ada", resp.User.Name)

	// The password hash never appears in the payload.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignup_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"name":"Ada","email":"a@b.co","password":"short"}`},
		{"short name", `{"name":" A ","email":"a@b.co","password":"longenough"}`},
		{"bad email", `{"name":"Ada","email":"not-an-email","password":"longenough"}`},
		{"missing fields", `{}`},
		{"bad json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignup_DuplicateEmailConflict(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"longenough"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/signup",
		`{"name":"Imposter","email":"ADA@example.com","password":"longenough"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_GenericUnauthorized(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"longenough"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"incorrect1"}`)
	unknownEmail := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"longenough"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	// Identical message text so the response cannot be used to probe which
	// field was wrong.
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestMe(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("no cookie", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid cookie", func(t *testing.T) {
		signup := doJSON(t, router, http.MethodPost, "/api/auth/signup",
			`{"name":"Ada","email":"ada@example.com","password":"longenough"}`)
		require.Equal(t, http.StatusCreated, signup.Code)
		cookie := sessionCookie(t, signup)
		require.NotNil(t, cookie)

		rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ada@example.com", resp.User.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "",
			&http.Cookie{Name: "token", Value: "not.a.jwt"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMe_ExpiredToken(t *testing.T) {
	router, _ := newTestRouter(t)

	signup := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"longenough"}`)
	require.Equal(t, http.StatusCreated, signup.Code)

	// Mint an already-expired token with the same secret; equivalent to
	// presenting a real token past its 24-hour window.
	expiredManager, err := NewJWTManager(testJWTConfig(-time.Hour))
	require.NoError(t, err)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(signup.Body.Bytes(), &resp))

	expired, err := expiredManager.CreateSessionToken(SessionClaims{
		UserID: resp.User.ID,
		Email:  resp.User.Email,
		Name:   resp.User.Name,
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "",
		&http.Cookie{Name: "token", Value: expired})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
