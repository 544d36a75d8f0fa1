package service

import (
	"context"
	"fmt"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

// AddToCart appends p to the current user's basket.
func (s *Shop) AddToCart(ctx context.Context, p *domain.Product) error {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	if err := user.Basket().AddToCart(p); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	s.log.Info().Str("login", user.Login()).Int("product_id", p.ID()).Int("items", user.Basket().Len()).Msg("product added to cart")
	return nil
}

func (s *Shop) Basket(ctx context.Context) (*domain.Basket, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return user.Basket(), nil
}

// ComputeOrderTotal sums the prices in the current user's basket. No rounding
// or tax is applied.
func (s *Shop) ComputeOrderTotal(ctx context.Context) (float64, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("compute order total: %w", err)
	}

	total := user.Basket().Total()
	s.log.Info().Str("login", user.Login()).Float64("total", total).Msg("order total computed")
	return total, nil
}
