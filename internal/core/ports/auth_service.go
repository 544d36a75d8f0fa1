package ports

import (
	"context"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

// RegisterResult is returned by RegisterUser.
type RegisterResult struct {
	User *domain.User
	// DefaultSecretApplied is true when no secret was supplied and
	// domain.DefaultSecret was stored instead.
	DefaultSecretApplied bool
}

// AuthService manages the user directory and the single current-user slot.
type AuthService interface {
	RegisterUser(ctx context.Context, login, secret string) (*RegisterResult, error)
	// Authenticate makes the matching user current, replacing any previous one.
	Authenticate(ctx context.Context, login, secret string) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
