package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/diretrix/helpdesk/internal/auth"
	"github.com/diretrix/helpdesk/internal/config"
	"github.com/diretrix/helpdesk/internal/domain"
	"github.com/diretrix/helpdesk/internal/repository"
	apperrors "github.com/diretrix/helpdesk/pkg/util"
)

// AuthService coordinates registration and sign-in flows.
type AuthService struct {
	users      repository.UserRepository
	sessions   *auth.SessionRegistry
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, sessions *auth.SessionRegistry) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// SignUp creates a new account. Role defaults to client.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, string, time.Time, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("name, email and password required", nil)
	}
	if role == "" {
		role = domain.UserRoleClient
	}
	if role != domain.UserRoleClient && role != domain.UserRoleAdmin {
		return nil, "", time.Time{}, apperrors.NewValidationError("invalid role", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	return s.issueToken(ctx, user)
}

// SignIn authenticates a user and starts a session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.issueToken(ctx, user)
}

// SignOut ends the caller's session, revoking the token server-side.
func (s *AuthService) SignOut(ctx context.Context, principal *auth.Principal) error {
	if principal == nil || principal.User == nil {
		return nil
	}
	return s.sessions.End(ctx, principal.SessionID, principal.User.ID)
}

// ChangePassword verifies the current password before updating the hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return apperrors.NewValidationError("new password required", nil)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// ListAdmins returns admin accounts, used for assignee selection.
func (s *AuthService) ListAdmins(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAdmins(ctx)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issueToken(ctx context.Context, user *domain.User) (*domain.User, string, time.Time, error) {
	sessionID, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role, sessionID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}
