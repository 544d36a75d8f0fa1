package ports

import (
	"context"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

// ProductRepository holds every product known to the shop, in creation order.
type ProductRepository interface {
	Add(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}

// CategoryRepository holds categories in creation order.
type CategoryRepository interface {
	Add(ctx context.Context, c *domain.Category) error
	// Find returns the first category matching sel, or domain.ErrCategoryNotFound.
	Find(ctx context.Context, sel domain.CategorySelector) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

// UserRepository is the user directory. Logins are not required to be unique.
type UserRepository interface {
	Add(ctx context.Context, u *domain.User) error
	// FindByLogin returns the first user with exactly this login, or
	// domain.ErrUserNotFound.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
