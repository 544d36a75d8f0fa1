package ports

import (
	"context"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

// AddProductInput carries the fields of a new product.
type AddProductInput struct {
	Name   string
	Price  float64
	Rating float64
	// CategoryID only tags the product; it does not append it to the category.
	// Zero leaves the product untagged.
	CategoryID int
}

// CatalogService covers products, categories and their association.
type CatalogService interface {
	AddProduct(ctx context.Context, in AddProductInput) (*domain.Product, error)
	FindProduct(ctx context.Context, id int) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)

	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	CreateCategories(ctx context.Context, names ...string) ([]*domain.Category, error)
	FindCategory(ctx context.Context, sel domain.CategorySelector) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	// AssignToCategory resolves sel first and fails with
	// domain.ErrCategoryNotFound before touching any product.
	AssignToCategory(ctx context.Context, sel domain.CategorySelector, products ...*domain.Product) (*domain.Category, error)
}

// CartService acts on the current user's basket.
type CartService interface {
	AddToCart(ctx context.Context, p *domain.Product) error
	Basket(ctx context.Context) (*domain.Basket, error)
	ComputeOrderTotal(ctx context.Context) (float64, error)
}
