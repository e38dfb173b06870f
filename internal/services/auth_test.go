package services

import (
	"context"
	"testing"
	"time"

	"github.com/ReasonJ01/admin-app/internal/repos"
	"github.com/ReasonJ01/admin-app/internal/requestdata"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()

	gdb := newTestDB(t)
	log := newTestLogger(t)
	userRepo := repos.NewUserRepo(gdb, log)
	tokenRepo := repos.NewUserTokenRepo(gdb, log)
	return NewAuthService(gdb, log, userRepo, tokenRepo, "test-secret", time.Hour, 24*time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	user, err := s.RegisterUser(ctx, "Admin@Example.com", "hunter22", "Admin")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.Email != "admin@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	access, refresh, err := s.LoginUser(ctx, "admin@example.com", "hunter22")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens, got access=%q refresh=%q", access, refresh)
	}

	authedCtx, err := s.SetContextFromToken(ctx, access)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(authedCtx)
	if rd == nil || rd.UserID != user.ID {
		t.Fatalf("expected request data for %s, got %+v", user.ID, rd)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.RegisterUser(ctx, "a@b.com", "pw", ""); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if _, err := s.RegisterUser(ctx, "A@B.com", "pw2", ""); err == nil {
		t.Fatalf("expected duplicate email to be rejected")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.RegisterUser(ctx, "a@b.com", "correct", ""); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if _, _, err := s.LoginUser(ctx, "a@b.com", "wrong"); err == nil {
		t.Fatalf("expected login to fail with wrong password")
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.RegisterUser(ctx, "a@b.com", "pw", ""); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	_, refresh, err := s.LoginUser(ctx, "a@b.com", "pw")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	access2, refresh2, err := s.RefreshUser(ctx, refresh)
	if err != nil {
		t.Fatalf("RefreshUser: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("expected new token pair")
	}
	if refresh2 == refresh {
		t.Fatalf("expected refresh token to rotate")
	}

	// The old refresh token was deleted during rotation.
	if _, _, err := s.RefreshUser(ctx, refresh); err == nil {
		t.Fatalf("expected old refresh token to be rejected after rotation")
	}
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	user, err := s.RegisterUser(ctx, "a@b.com", "pw", "")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	_, refresh, err := s.LoginUser(ctx, "a@b.com", "pw")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	authedCtx := requestdata.WithRequestData(ctx, &requestdata.RequestData{UserID: user.ID})
	if err := s.LogoutUser(authedCtx); err != nil {
		t.Fatalf("LogoutUser: %v", err)
	}

	if _, _, err := s.RefreshUser(ctx, refresh); err == nil {
		t.Fatalf("expected refresh to fail after logout")
	}
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
	s := newAuthService(t)

	if _, err := s.SetContextFromToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatalf("expected invalid token to be rejected")
	}
}
