package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workmatch/internal/pkg/jwt"
)

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newTestJWT())

	usr, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Email:    "  Driver@Example.COM ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if usr.Email != "driver@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens, got access=%q refresh=%q", access, refresh)
	}

	logged, _, _, err := uc.Login(context.Background(), LoginInput{
		Email:    "driver@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != usr.ID {
		t.Fatalf("login returned a different user")
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newTestJWT())

	in := RegisterInput{Email: "dup@example.com", Password: "password1"}
	if _, _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthRegisterRejectsBadInput(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newTestJWT())

	cases := []RegisterInput{
		{Email: "", Password: "password1"},
		{Email: "not-an-email", Password: "password1"},
		{Email: "ok@example.com", Password: "short"},
	}
	for _, in := range cases {
		if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newTestJWT())

	if _, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "x@example.com", Password: "password1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "x@example.com", Password: "password2"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, _, _, err = uc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "password1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthRefreshRotatesTokens(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newTestJWT())

	_, access, refresh, err := uc.Register(context.Background(), RegisterInput{Email: "r@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	newAccess, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatalf("expected fresh tokens")
	}

	// An access token must not pass as a refresh token.
	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
