package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"swiftprints/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthToken is an issued admin session.
type AuthToken struct {
	AccessToken string
	ExpiresAt   time.Time
	Username    string
}

// IAuthUseCase exposes admin authentication.
//
// There is a single admin identity, configured through the environment;
// tokens are HS256 JWTs carrying the username as subject.

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (AuthToken, error)
	Verify(tokenString string) (string, error)
}

type AuthUseCase struct {
	cfg config.Config
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(cfg config.Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (AuthToken, error) {
	username = strings.TrimSpace(username)
	if !u.cfg.CheckAdminCredentials(username, password) {
		return AuthToken{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(u.cfg.JWTExpiry)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.cfg.JWTSecret)
	if err != nil {
		return AuthToken{}, err
	}

	return AuthToken{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		Username:    username,
	}, nil
}

// Verify parses and validates a bearer token, returning the username.
func (u *AuthUseCase) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.cfg.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
