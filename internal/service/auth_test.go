package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"smileon/config"
	"smileon/internal/domain"
)

func newAuthService(userRepo *fakeUserRepo, authRepo *fakeAuthRepo, adminHash string) *AuthServiceImpl {
	return NewAuthService(authRepo, userRepo, testJWTConfig(), config.AdminConfig{PasswordHash: adminHash}, zap.NewNop())
}

func registerDTO() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "김철수",
		Email:    "kim@example.com",
		Phone:    "010-1234-5678",
		Password: "secret99",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	authRepo := newFakeAuthRepo()
	svc := newAuthService(userRepo, authRepo, "")

	id, err := svc.Register(context.Background(), registerDTO())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	stored := userRepo.users[id]
	if stored.PasswordHash == "secret99" {
		t.Fatalf("password stored in plain text")
	}
	if stored.Phone != "01012345678" {
		t.Errorf("phone not normalized: %s", stored.Phone)
	}
	if stored.Role != domain.UserRolePatient {
		t.Errorf("role = %s, want patient", stored.Role)
	}

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "kim@example.com",
		Password: "secret99",
	}, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("Login() returned empty tokens")
	}

	userID, role, err := svc.ParseToken(context.Background(), tokens.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if userID != id || role != domain.UserRolePatient {
		t.Errorf("ParseToken() = (%d, %s), want (%d, patient)", userID, role, id)
	}

	if len(authRepo.sessions) != 1 {
		t.Errorf("Login() stored %d sessions, want 1", len(authRepo.sessions))
	}

	if _, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "kim@example.com",
		Password: "wrong",
	}, "test-agent", "127.0.0.1"); err == nil {
		t.Errorf("Login() accepted wrong password")
	}
}

func TestRegisterDuplicates(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeAuthRepo(), "")

	if _, err := svc.Register(context.Background(), registerDTO()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	dup := registerDTO()
	dup.Phone = "010-9999-8888"
	if _, err := svc.Register(context.Background(), dup); err == nil {
		t.Errorf("Register() accepted duplicate email")
	}

	dup = registerDTO()
	dup.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), dup); err == nil {
		t.Errorf("Register() accepted duplicate phone")
	}
}

func TestAdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("office-pass"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	svc := newAuthService(newFakeUserRepo(), newFakeAuthRepo(), string(hash))

	token, err := svc.AdminLogin(context.Background(), domain.AdminLoginRequest{Password: "office-pass"})
	if err != nil {
		t.Fatalf("AdminLogin() error = %v", err)
	}

	_, role, err := svc.ParseToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if role != domain.UserRoleAdmin {
		t.Errorf("admin token role = %s, want admin", role)
	}

	if _, err := svc.AdminLogin(context.Background(), domain.AdminLoginRequest{Password: "wrong"}); err == nil {
		t.Errorf("AdminLogin() accepted wrong password")
	}
}

func TestAdminLoginDisabled(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeAuthRepo(), "")

	if _, err := svc.AdminLogin(context.Background(), domain.AdminLoginRequest{Password: "anything"}); err == nil {
		t.Errorf("AdminLogin() succeeded with no configured hash")
	}
}

func TestRefreshRotation(t *testing.T) {
	userRepo := newFakeUserRepo()
	authRepo := newFakeAuthRepo()
	svc := newAuthService(userRepo, authRepo, "")

	if _, err := svc.Register(context.Background(), registerDTO()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	tokens, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "kim@example.com",
		Password: "secret99",
	}, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	fresh, err := svc.RefreshTokens(context.Background(), tokens.RefreshToken, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("RefreshTokens() error = %v", err)
	}
	if fresh.RefreshToken == tokens.RefreshToken {
		t.Errorf("refresh token was not rotated")
	}

	// The old session is gone after rotation.
	if _, err := svc.RefreshTokens(context.Background(), tokens.RefreshToken, "test-agent", "127.0.0.1"); err == nil {
		t.Errorf("RefreshTokens() accepted a rotated-out token")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeAuthRepo(), "")

	if err := svc.Logout(context.Background(), "unknown-token"); err != nil {
		t.Errorf("Logout() on unknown token error = %v", err)
	}
}
