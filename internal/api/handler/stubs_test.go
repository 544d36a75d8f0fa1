package handler

import (
	"context"

	"github.com/99minutos/shop-catalog/internal/core/domain"
	"github.com/99minutos/shop-catalog/internal/core/ports"
)

type stubAuthService struct {
	registerFn     func(ctx context.Context, login, secret string) (*ports.RegisterResult, error)
	authenticateFn func(ctx context.Context, login, secret string) error
	currentFn      func(ctx context.Context) (*domain.User, error)
	listFn         func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, login, secret string) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, login, secret)
}

func (s *stubAuthService) Authenticate(ctx context.Context, login, secret string) error {
	return s.authenticateFn(ctx, login, secret)
}

func (s *stubAuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.currentFn(ctx)
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

type stubTokens struct {
	token string
	err   error
}

func (s stubTokens) Issue(*domain.User) (string, error) { return s.token, s.err }

type stubCatalogService struct {
	addProductFn       func(ctx context.Context, in ports.AddProductInput) (*domain.Product, error)
	findProductFn      func(ctx context.Context, id int) (*domain.Product, error)
	listProductsFn     func(ctx context.Context) ([]*domain.Product, error)
	createCategoryFn   func(ctx context.Context, name string) (*domain.Category, error)
	createCategoriesFn func(ctx context.Context, names ...string) ([]*domain.Category, error)
	findCategoryFn     func(ctx context.Context, sel domain.CategorySelector) (*domain.Category, error)
	listCategoriesFn   func(ctx context.Context) ([]*domain.Category, error)
	assignFn           func(ctx context.Context, sel domain.CategorySelector, products ...*domain.Product) (*domain.Category, error)
}

func (s *stubCatalogService) AddProduct(ctx context.Context, in ports.AddProductInput) (*domain.Product, error) {
	return s.addProductFn(ctx, in)
}

func (s *stubCatalogService) FindProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.findProductFn(ctx, id)
}

func (s *stubCatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.listProductsFn(ctx)
}

func (s *stubCatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	return s.createCategoryFn(ctx, name)
}

func (s *stubCatalogService) CreateCategories(ctx context.Context, names ...string) ([]*domain.Category, error) {
	return s.createCategoriesFn(ctx, names...)
}

func (s *stubCatalogService) FindCategory(ctx context.Context, sel domain.CategorySelector) (*domain.Category, error) {
	return s.findCategoryFn(ctx, sel)
}

func (s *stubCatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.listCategoriesFn(ctx)
}

func (s *stubCatalogService) AssignToCategory(ctx context.Context, sel domain.CategorySelector, products ...*domain.Product) (*domain.Category, error) {
	return s.assignFn(ctx, sel, products...)
}

type stubCartService struct {
	addFn    func(ctx context.Context, p *domain.Product) error
	basketFn func(ctx context.Context) (*domain.Basket, error)
	totalFn  func(ctx context.Context) (float64, error)
}

func (s *stubCartService) AddToCart(ctx context.Context, p *domain.Product) error {
	return s.addFn(ctx, p)
}

func (s *stubCartService) Basket(ctx context.Context) (*domain.Basket, error) {
	return s.basketFn(ctx)
}

func (s *stubCartService) ComputeOrderTotal(ctx context.Context) (float64, error) {
	return s.totalFn(ctx)
}
