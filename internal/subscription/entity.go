// AuraConnect | 2026
// entity.go

package subscription

import (
	"time"
)

// Subscription is the single plan row a user may hold; re-subscribing
// overwrites it in place.
type Subscription struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Plan      string    `db:"plan"`
	CreatedAt time.Time `db:"created_at"`
}

const (
	PlanStarter    = "starter"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)
