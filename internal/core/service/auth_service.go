package service

import (
	"context"
	"fmt"

	"github.com/99minutos/shop-catalog/internal/core/domain"
	"github.com/99minutos/shop-catalog/internal/core/ports"
)

// RegisterUser adds a user to the directory. An empty secret is replaced with
// domain.DefaultSecret and reported through the result and a warning log line.
func (s *Shop) RegisterUser(ctx context.Context, login, secret string) (*ports.RegisterResult, error) {
	secret, fallback := domain.ResolveSecret(secret)
	if fallback {
		s.log.Warn().Str("login", login).Msg("no secret supplied, default secret applied")
	}

	stored, err := s.secrets.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	user := domain.NewUser(login, stored, nil)
	if err := s.users.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.log.Info().Str("login", login).Msg("user registered")
	return &ports.RegisterResult{User: user, DefaultSecretApplied: fallback}, nil
}

// Authenticate looks the login up and compares the secret. On success the user
// becomes current, silently replacing the previous one; on failure the current
// user is left as it was.
func (s *Shop) Authenticate(ctx context.Context, login, secret string) error {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		s.log.Debug().Str("login", login).Msg("authentication failed: unknown login")
		return err
	}

	if !s.secrets.Matches(user.Secret(), secret) {
		s.log.Debug().Str("login", login).Msg("authentication failed: wrong secret")
		return domain.ErrInvalidCredentials
	}

	s.current = user
	s.log.Info().Str("login", login).Msg("user authenticated")
	return nil
}

// CurrentUser returns the authenticated user or domain.ErrNoCurrentUser.
func (s *Shop) CurrentUser(_ context.Context) (*domain.User, error) {
	if s.current == nil {
		return nil, domain.ErrNoCurrentUser
	}
	return s.current, nil
}

func (s *Shop) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
