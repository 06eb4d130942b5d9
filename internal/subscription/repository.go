// AuraConnect | 2026
// repository.go

package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/auraconnect/api/internal/core"
)

type Repository interface {
	Upsert(ctx context.Context, userID int64, plan string) error
	GetByUserID(ctx context.Context, userID int64) (*Subscription, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Upsert inserts or overwrites the user's single subscription row. The
// conflict resolution is a single atomic statement, so two concurrent calls
// settle last-committed-wins with no duplicate row.
func (r *repository) Upsert(
	ctx context.Context,
	userID int64,
	plan string,
) error {
	query := r.db.Rebind(`
		INSERT INTO subscriptions (user_id, plan)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET plan = excluded.plan, created_at = CURRENT_TIMESTAMP`)

	if _, err := r.db.ExecContext(ctx, query, userID, plan); err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}

	return nil
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID int64,
) (*Subscription, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, plan, created_at
		FROM subscriptions
		WHERE user_id = ?`)

	var sub Subscription
	err := r.db.GetContext(ctx, &sub, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get subscription: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}

	return &sub, nil
}
