package auth

import (
	"testing"

	"github.com/diretrix/helpdesk/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, exp, err := tm.GenerateToken("u-1", domain.UserRoleAdmin, "s-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if exp.IsZero() {
		t.Error("expiry not set")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != domain.UserRoleAdmin || claims.SessionID != "s-1" {
		t.Errorf("claims = %+v, want u-1/admin/s-1", claims)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	tm := NewTokenManager("secret-a", 60)
	token, _, err := tm.GenerateToken("u-1", domain.UserRoleClient, "s-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewTokenManager("secret-b", 60)
	if _, err := other.ParseToken(token); err == nil {
		t.Error("token signed with different secret accepted")
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	if _, err := tm.ParseToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}
