package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
	"github.com/lmrivero/chatsurvey/internal/pkg/auth"
)

func newTestAuthService(repo *stubUserRepo) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test.app",
	})
	return NewAuthService(repo, jwtService, testLogger)
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	repo := newStubUserRepo()
	service := newTestAuthService(repo)

	user, token, err := service.Register(context.Background(), &dto.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Errorf("role = %s, want student", user.Role)
	}
	if token == "" {
		t.Error("Register returned empty token")
	}
	if user.ID == 0 {
		t.Error("Register did not assign an id")
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	service := newTestAuthService(repo)

	user, _, err := service.Register(context.Background(), &dto.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := repo.users[user.ID]
	if stored.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.Password, "secret123") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterExplicitRole(t *testing.T) {
	service := newTestAuthService(newStubUserRepo())

	user, _, err := service.Register(context.Background(), &dto.RegisterRequest{
		Username: "profe",
		Email:    "profe@example.com",
		Password: "secret123",
		Role:     "teacher",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != models.RoleTeacher {
		t.Errorf("role = %s, want teacher", user.Role)
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	service := newTestAuthService(newStubUserRepo())
	ctx := context.Background()

	req := &dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "secret123"}
	if _, _, err := service.Register(ctx, req); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, _, err := service.Register(ctx, req)
	if !errors.Is(err, apperrors.ErrDuplicateIdentity) {
		t.Errorf("second Register error = %v, want ErrDuplicateIdentity", err)
	}
}

func TestLogin(t *testing.T) {
	service := newTestAuthService(newStubUserRepo())
	ctx := context.Background()

	if _, _, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, token, err := service.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Username != "ana" {
		t.Errorf("username = %q, want ana", user.Username)
	}
	if token == "" {
		t.Error("Login returned empty token")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	service := newTestAuthService(newStubUserRepo())
	ctx := context.Background()

	if _, _, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, _, wrongPassword := service.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "nope"})
	_, _, unknownEmail := service.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

	if !errors.Is(wrongPassword, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if !errors.Is(unknownEmail, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownEmail)
	}
}

func TestProfile(t *testing.T) {
	service := newTestAuthService(newStubUserRepo())
	ctx := context.Background()

	registered, _, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	profile, err := service.Profile(ctx, registered.ID)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if profile.Email != "ana@example.com" {
		t.Errorf("email = %q, want ana@example.com", profile.Email)
	}
	if profile.Password != "" {
		t.Error("Profile leaked the password hash")
	}
}

func TestProfileUnknownUser(t *testing.T) {
	service := newTestAuthService(newStubUserRepo())
	if _, err := service.Profile(context.Background(), 999); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}
