package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diretrix/helpdesk/internal/auth"
	"github.com/diretrix/helpdesk/internal/config"
	"github.com/diretrix/helpdesk/internal/domain"
	apperrors "github.com/diretrix/helpdesk/pkg/util"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := &fakeUserRepo{users: map[string]*domain.User{}}
	sessions := auth.NewSessionRegistry(nil, time.Hour)
	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4, // minimum cost keeps the suite fast
	}
	return NewAuthService(cfg, users, sessions), users
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, token, exp, err := svc.SignUp(ctx, "Maria Santos", "Maria@Example.com", "secret", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if user.Role != domain.UserRoleClient {
		t.Errorf("role = %q, want client default", user.Role)
	}
	if user.Email != "maria@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if token == "" || exp.IsZero() {
		t.Error("token not issued")
	}

	signed, _, _, err := svc.SignIn(ctx, "maria@example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if signed.ID != user.ID {
		t.Errorf("signed in as %q, want %q", signed.ID, user.ID)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	users.users["u-1"] = &domain.User{ID: "u-1", Email: "maria@example.com", Role: domain.UserRoleClient}

	_, _, _, err := svc.SignUp(ctx, "Maria", "maria@example.com", "secret", "")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Errorf("err = %v, want conflict", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, _, _, err := svc.SignUp(ctx, "Maria", "maria@example.com", "secret", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, _, _, err := svc.SignIn(ctx, "maria@example.com", "wrong")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "UNAUTHORIZED" {
		t.Errorf("err = %v, want unauthorized", err)
	}

	_, _, _, err = svc.SignIn(ctx, "ghost@example.com", "secret")
	if !errors.As(err, &domainErr) || domainErr.Code != "UNAUTHORIZED" {
		t.Errorf("unknown email err = %v, want unauthorized", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, _, _, err := svc.SignUp(ctx, "Maria", "maria@example.com", "old-secret", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "wrong", "new-secret"); err == nil {
		t.Error("wrong current password accepted")
	}
	if err := svc.ChangePassword(ctx, user.ID, "old-secret", "new-secret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, _, _, err := svc.SignIn(ctx, "maria@example.com", "new-secret"); err != nil {
		t.Errorf("sign in with new password: %v", err)
	}
}
