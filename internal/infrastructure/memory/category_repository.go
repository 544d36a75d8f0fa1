package memory

import (
	"context"
	"fmt"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

type CategoryRepository struct {
	items []*domain.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{items: make([]*domain.Category, 0)}
}

func (r *CategoryRepository) Add(_ context.Context, c *domain.Category) error {
	if c == nil {
		return fmt.Errorf("add category: %w", domain.NewTypeMismatch("category", "Category", "nil"))
	}
	r.items = append(r.items, c)
	return nil
}

// Find scans in creation order; duplicate names resolve to the oldest category.
func (r *CategoryRepository) Find(_ context.Context, sel domain.CategorySelector) (*domain.Category, error) {
	for _, c := range r.items {
		if sel.Matches(c) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, sel)
}

func (r *CategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, len(r.items))
	copy(out, r.items)
	return out, nil
}
