package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"swiftprints/internal/config"

	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig(t *testing.T) config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		JWTSecret:         []byte("test-secret"),
		JWTExpiry:         time.Hour,
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUseCase(testAuthConfig(t))
		_, err := uc.Login(context.Background(), "admin", "nope")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong username", func(t *testing.T) {
		uc := NewAuthUseCase(testAuthConfig(t))
		_, err := uc.Login(context.Background(), "root", "s3cret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success and verify round trip", func(t *testing.T) {
		uc := NewAuthUseCase(testAuthConfig(t))
		token, err := uc.Login(context.Background(), "admin", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token.AccessToken == "" || token.Username != "admin" {
			t.Fatalf("unexpected token: %+v", token)
		}
		if !token.ExpiresAt.After(time.Now()) {
			t.Fatalf("expected future expiry, got %v", token.ExpiresAt)
		}

		username, err := uc.Verify(token.AccessToken)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}
		if username != "admin" {
			t.Fatalf("expected admin, got %q", username)
		}
	})
}

func TestAuthUseCase_Verify(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		uc := NewAuthUseCase(testAuthConfig(t))
		if _, err := uc.Verify("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := testAuthConfig(t)
		other.JWTSecret = []byte("other-secret")
		token, err := NewAuthUseCase(other).Login(context.Background(), "admin", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewAuthUseCase(testAuthConfig(t))
		if _, err := uc.Verify(token.AccessToken); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
