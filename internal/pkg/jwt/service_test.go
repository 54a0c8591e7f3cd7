package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "a@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: %s != %s", claims.UserID, userID)
	}
	if claims.Email != "a@example.com" {
		t.Fatalf("email mismatch: %q", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("token type: %q", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token classified as refresh")
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)

	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("refresh token not classified as refresh")
	}
}

func TestExpiredToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestForeignSignatureRejected(t *testing.T) {
	issuer := NewHMACService("one", "two", time.Minute, time.Hour)
	verifier := NewHMACService("other", "another", time.Minute, time.Hour)

	tok, err := issuer.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := verifier.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGarbageToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)
	if _, err := svc.ValidateToken("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
