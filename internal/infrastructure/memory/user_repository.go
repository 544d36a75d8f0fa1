package memory

import (
	"context"
	"fmt"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

type UserRepository struct {
	users []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make([]*domain.User, 0)}
}

// Add appends u. Logins are not checked for uniqueness.
func (r *UserRepository) Add(_ context.Context, u *domain.User) error {
	if u == nil {
		return fmt.Errorf("add user: %w", domain.NewTypeMismatch("user", "User", "nil"))
	}
	r.users = append(r.users, u)
	return nil
}

func (r *UserRepository) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Login() == login {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
