package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrAuthNotConfigured = errors.New("admin password is not configured")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

// DefaultTokenTTL keeps admin sessions short-lived; logout is a client-side
// token discard, so expiry is the only server-side bound.
const DefaultTokenTTL = 12 * time.Hour

type IAuthUseCase interface {
	Login(password string) (string, error)
	ValidateToken(token string) error
}

// AuthUseCase issues and checks the admin session token. Single shared admin
// credential, HS256-signed JWT; there are no user accounts.
type AuthUseCase struct {
	password string
	secret   []byte
	ttl      time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(password, secret string, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthUseCase{password: password, secret: []byte(secret), ttl: ttl}
}

// Login checks the admin password and returns a signed session token.
func (u *AuthUseCase) Login(password string) (string, error) {
	if u.password == "" {
		return "", ErrAuthNotConfigured
	}
	if password != u.password {
		return "", ErrInvalidPassword
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		Issuer:    "diamond-exteriors",
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

// ValidateToken verifies signature, expiry and subject.
func (u *AuthUseCase) ValidateToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != "admin" {
		return ErrInvalidToken
	}
	return nil
}
