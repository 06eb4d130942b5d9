// AuraConnect | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/auraconnect/api/internal/core"
	"github.com/auraconnect/api/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type Service struct {
	repo user.Repository
	jwt  *JWTManager
}

func NewService(repo user.Repository, jwt *JWTManager) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Signup creates the account and mints its first session token. Email
// uniqueness is case-insensitive: the address is normalized before it ever
// reaches the store, so the unique constraint sees one canonical form.
func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (*user.User, string, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        NormalizeEmail(req.Email),
		PasswordHash: passwordHash,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, "", ErrEmailExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password, and burns a bcrypt comparison in both paths.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*user.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if !core.VerifyPasswordTimingSafe(req.Password, &u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// CurrentUser re-fetches the user row behind a verified token so a deleted
// account invalidates the session even though the token itself still checks
// out.
func (s *Service) CurrentUser(
	ctx context.Context,
	id int64,
) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) issueToken(u *user.User) (string, error) {
	token, err := s.jwt.CreateSessionToken(SessionClaims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	})
	if err != nil {
		return "", fmt.Errorf("create session token: %w", err)
	}
	return token, nil
}

// NormalizeEmail is the canonical form used for every lookup and uniqueness
// check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
