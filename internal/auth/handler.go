// AuraConnect | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/auraconnect/api/internal/config"
	"github.com/auraconnect/api/internal/core"
	"github.com/auraconnect/api/internal/middleware"
)

type Handler struct {
	service   *Service
	verifier  middleware.TokenVerifier
	cookies   config.JWTConfig
	validator *validator.Validate
}

func NewHandler(
	service *Service,
	verifier middleware.TokenVerifier,
	cookies config.JWTConfig,
) *Handler {
	return &Handler{
		service:   service,
		verifier:  verifier,
		cookies:   cookies,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	// Validation applies to the trimmed name, not raw padding.
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, token, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			core.JSONError(w, core.DuplicateError("Email"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	core.Created(w, AuthResponse{
		Message: "Signup successful!",
		User:    ToUserResponse(u),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "Email and password are required.")
		return
	}

	u, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(
				w,
				core.UnauthorizedError("Invalid email or password."),
			)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	core.OK(w, AuthResponse{
		Message: "Login successful!",
		User:    ToUserResponse(u),
	})
}

// Logout clears the client cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation list.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	core.OK(w, core.MessageResponse{Message: "Logged out successfully."})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFromRequest(r, h.cookies.CookieName)
	if token == "" {
		core.Unauthorized(w, "Not logged in.")
		return
	}

	claims, err := h.verifier.VerifySessionToken(r.Context(), token)
	if err != nil {
		slog.Debug("session token rejected", "error", err)
		core.Unauthorized(w, "Invalid session.")
		return
	}

	u, err := h.service.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.Unauthorized(w, "User not found.")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MeResponse{User: ToUserResponse(u)})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookies.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookies.SessionExpire.Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookies.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
