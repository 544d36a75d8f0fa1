package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/shop-catalog/internal/core/domain"
	"github.com/99minutos/shop-catalog/internal/core/ports"
)

// Shop is the catalog aggregate: it owns products, categories, users and the
// current-user slot, and implements ports.AuthService, ports.CatalogService and
// ports.CartService.
//
// Shop keeps unguarded mutable state (the current user, and whatever the
// injected allocator and repositories hold). It is not safe for concurrent
// mutation without external synchronization.
type Shop struct {
	ids        ports.IDAllocator
	products   ports.ProductRepository
	categories ports.CategoryRepository
	users      ports.UserRepository
	secrets    ports.SecretHasher
	log        zerolog.Logger

	current *domain.User
}

// NewShop wires a Shop. A nil secrets hasher falls back to PlainSecrets.
func NewShop(
	ids ports.IDAllocator,
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	users ports.UserRepository,
	secrets ports.SecretHasher,
	log zerolog.Logger,
) *Shop {
	if secrets == nil {
		secrets = PlainSecrets{}
	}
	return &Shop{
		ids:        ids,
		products:   products,
		categories: categories,
		users:      users,
		secrets:    secrets,
		log:        log,
	}
}

// AddProduct allocates an id and stores a new product. Validation happens
// before the id is drawn, so a rejected product does not consume one.
func (s *Shop) AddProduct(ctx context.Context, in ports.AddProductInput) (*domain.Product, error) {
	if err := domain.ValidateProduct(in.Price, in.Rating); err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}

	p, err := domain.NewProduct(s.ids.NextID(domain.KindProduct), in.Name, in.Price, in.Rating)
	if err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	if in.CategoryID != 0 {
		p.SetCategoryID(in.CategoryID)
	}

	if err := s.products.Add(ctx, p); err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}

	s.log.Info().Int("product_id", p.ID()).Str("name", p.Name()).Float64("price", p.Price()).Msg("product created")
	return p, nil
}

func (s *Shop) FindProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *Shop) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

// CreateCategory allocates an id and stores an empty category.
func (s *Shop) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	c := domain.NewCategory(s.ids.NextID(domain.KindCategory), name)
	if err := s.categories.Add(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info().Int("category_id", c.ID()).Str("name", c.Name()).Msg("category created")
	return c, nil
}

// CreateCategories creates one category per name, in order.
func (s *Shop) CreateCategories(ctx context.Context, names ...string) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(names))
	for _, name := range names {
		c, err := s.CreateCategory(ctx, name)
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Shop) FindCategory(ctx context.Context, sel domain.CategorySelector) (*domain.Category, error) {
	return s.categories.Find(ctx, sel)
}

func (s *Shop) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

// AssignToCategory resolves the category and checks every product before
// mutating anything.
func (s *Shop) AssignToCategory(ctx context.Context, sel domain.CategorySelector, products ...*domain.Product) (*domain.Category, error) {
	c, err := s.categories.Find(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("assign to category: %w", err)
	}

	for i, p := range products {
		if p == nil {
			return nil, fmt.Errorf("assign to category: %w",
				domain.NewTypeMismatch(fmt.Sprintf("products[%d]", i), "Product", "nil"))
		}
	}

	n := c.Assign(products...)
	s.log.Info().Int("category_id", c.ID()).Int("assigned", n).Msg("products assigned to category")
	return c, nil
}
