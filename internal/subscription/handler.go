// AuraConnect | 2026
// handler.go

package subscription

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/auraconnect/api/internal/auth"
	"github.com/auraconnect/api/internal/core"
	"github.com/auraconnect/api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the two identity-gated endpoints behind the
// authenticator.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/subscribe", h.Subscribe)
		r.Get("/dashboard", h.Dashboard)
	})
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		core.Unauthorized(w, "")
		return
	}

	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid plan selected.")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, "Invalid plan selected.")
		return
	}

	if err := h.service.Subscribe(r.Context(), claims.UserID, req.Plan); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, core.MessageResponse{
		Message: fmt.Sprintf("Subscription updated to %s.", req.Plan),
	})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		core.Unauthorized(w, "")
		return
	}

	u, sub, err := h.service.Dashboard(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.Unauthorized(w, "User not found.")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DashboardResponse{
		Message:      "Dashboard data fetched.",
		User:         auth.ToUserResponse(u),
		Subscription: toSubscriptionResponse(sub),
	})
}
