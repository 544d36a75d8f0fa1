package memory

import (
	"context"
	"fmt"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

type ProductRepository struct {
	items []*domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{items: make([]*domain.Product, 0)}
}

func (r *ProductRepository) Add(_ context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("add product: %w", domain.NewTypeMismatch("product", "Product", "nil"))
	}
	r.items = append(r.items, p)
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id int) (*domain.Product, error) {
	for _, p := range r.items {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(r.items))
	copy(out, r.items)
	return out, nil
}
