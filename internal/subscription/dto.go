// AuraConnect | 2026
// dto.go

package subscription

import (
	"time"

	"github.com/auraconnect/api/internal/auth"
)

type SubscribeRequest struct {
	Plan string `json:"plan" validate:"required,oneof=starter pro enterprise"`
}

type SubscriptionResponse struct {
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardResponse struct {
	Message      string                `json:"message"`
	User         auth.UserResponse     `json:"user"`
	Subscription *SubscriptionResponse `json:"subscription"`
}

func toSubscriptionResponse(s *Subscription) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &SubscriptionResponse{
		Plan:      s.Plan,
		CreatedAt: s.CreatedAt,
	}
}
