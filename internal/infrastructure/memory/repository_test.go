package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

func TestProductRepository_AddFindList(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	milk, _ := domain.NewProduct(1, "Milk", 35, 5)
	bread, _ := domain.NewProduct(2, "Bread", 34, 4.3)
	_ = repo.Add(ctx, milk)
	_ = repo.Add(ctx, bread)

	got, err := repo.FindByID(ctx, 2)
	if err != nil || got != bread {
		t.Fatalf("FindByID(2): got %v, err %v", got, err)
	}
	if _, err := repo.FindByID(ctx, 9); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0] != milk || list[1] != bread {
		t.Fatalf("unexpected list: %v", list)
	}
}

func TestProductRepository_AddNil(t *testing.T) {
	if err := NewProductRepository().Add(context.Background(), nil); !errors.Is(err, domain.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestCategoryRepository_Find_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	first := domain.NewCategory(1, "Dairy")
	second := domain.NewCategory(2, "Dairy")
	_ = repo.Add(ctx, first)
	_ = repo.Add(ctx, second)

	got, err := repo.Find(ctx, domain.CategoryByName("Dairy"))
	if err != nil || got != first {
		t.Fatalf("expected first Dairy, got %v (err %v)", got, err)
	}

	got, err = repo.Find(ctx, domain.CategoryByID(2))
	if err != nil || got != second {
		t.Fatalf("expected id 2, got %v (err %v)", got, err)
	}
}

func TestCategoryRepository_Find_NotFound(t *testing.T) {
	_, err := NewCategoryRepository().Find(context.Background(), domain.CategoryByName("Vegetables"))
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUserRepository_FindByLogin(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	alice := domain.NewUser("alice", "secret1", nil)
	dup := domain.NewUser("alice", "other", nil)
	_ = repo.Add(ctx, alice)
	_ = repo.Add(ctx, dup)

	got, err := repo.FindByLogin(ctx, "alice")
	if err != nil || got != alice {
		t.Fatalf("expected first alice, got %v (err %v)", got, err)
	}
	if _, err := repo.FindByLogin(ctx, "Alice"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("login match must be case-sensitive, got %v", err)
	}

	users, _ := repo.List(ctx)
	if len(users) != 2 {
		t.Fatalf("duplicate logins must both be stored, got %d", len(users))
	}
}
