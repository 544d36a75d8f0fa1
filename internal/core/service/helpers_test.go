package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/shop-catalog/internal/core/domain"
	"github.com/99minutos/shop-catalog/internal/core/ports"
	"github.com/99minutos/shop-catalog/internal/infrastructure/memory"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// stubAllocator records every request and hands out ids from a script.
type stubAllocator struct {
	next     map[domain.EntityKind]int
	requests []domain.EntityKind
}

func newStubAllocator() *stubAllocator {
	return &stubAllocator{next: make(map[domain.EntityKind]int)}
}

func (a *stubAllocator) NextID(kind domain.EntityKind) int {
	a.requests = append(a.requests, kind)
	a.next[kind]++
	return a.next[kind]
}

type failingUserRepo struct {
	err error
}

func (r *failingUserRepo) Add(context.Context, *domain.User) error { return r.err }

func (r *failingUserRepo) FindByLogin(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func (r *failingUserRepo) List(context.Context) ([]*domain.User, error) { return nil, r.err }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestShop(ids ports.IDAllocator, secrets ports.SecretHasher) *Shop {
	return NewShop(
		ids,
		memory.NewProductRepository(),
		memory.NewCategoryRepository(),
		memory.NewUserRepository(),
		secrets,
		zerolog.Nop(),
	)
}

func mustAddProduct(t *testing.T, s *Shop, name string, price float64) *domain.Product {
	t.Helper()
	p, err := s.AddProduct(context.Background(), ports.AddProductInput{Name: name, Price: price, Rating: 5})
	if err != nil {
		t.Fatalf("AddProduct(%s): %v", name, err)
	}
	return p
}

func mustLogin(t *testing.T, s *Shop, login, secret string) {
	t.Helper()
	ctx := context.Background()
	if _, err := s.RegisterUser(ctx, login, secret); err != nil {
		t.Fatalf("RegisterUser(%s): %v", login, err)
	}
	if err := s.Authenticate(ctx, login, secret); err != nil {
		t.Fatalf("Authenticate(%s): %v", login, err)
	}
}
