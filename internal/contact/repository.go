// AuraConnect | 2026
// repository.go

package contact

import (
	"context"
	"fmt"

	"github.com/auraconnect/api/internal/core"
)

// Repository persists contact messages as write-only audit records; nothing
// in the system reads them back.
type Repository interface {
	Create(ctx context.Context, name, email, message string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	name, email, message string,
) error {
	query := r.db.Rebind(`
		INSERT INTO contact_messages (name, email, message)
		VALUES (?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, name, email, message); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}
