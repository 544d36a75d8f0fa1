package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

// TokenIssuer signs HS256 session tokens for authenticated users.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a token whose "login" claim names the user.
func (i *TokenIssuer) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"login": user.Login(),
		"exp":   time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}
