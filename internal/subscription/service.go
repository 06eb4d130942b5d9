// AuraConnect | 2026
// service.go

package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/auraconnect/api/internal/core"
	"github.com/auraconnect/api/internal/user"
)

type Service struct {
	repo  Repository
	users user.Repository
}

func NewService(repo Repository, users user.Repository) *Service {
	return &Service{repo: repo, users: users}
}

func (s *Service) Subscribe(
	ctx context.Context,
	userID int64,
	plan string,
) error {
	if err := s.repo.Upsert(ctx, userID, plan); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	return nil
}

// Dashboard returns the current user row plus their subscription, or a nil
// subscription when none exists yet.
func (s *Service) Dashboard(
	ctx context.Context,
	userID int64,
) (*user.User, *Subscription, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return u, nil, nil
		}
		return nil, nil, err
	}

	return u, sub, nil
}
