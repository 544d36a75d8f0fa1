package memory

import (
	"testing"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

func TestAllocator_SequencePerKind(t *testing.T) {
	a := NewAllocator()

	for want := 1; want <= 5; want++ {
		if got := a.NextID(domain.KindProduct); got != want {
			t.Fatalf("product id: expected %d, got %d", want, got)
		}
	}
	if got := a.NextID(domain.KindCategory); got != 1 {
		t.Fatalf("category sequence must start at 1, got %d", got)
	}
	if got := a.NextID(domain.KindProduct); got != 6 {
		t.Fatalf("product sequence must not be affected by categories, got %d", got)
	}
}

func TestAllocator_IndependentInstances(t *testing.T) {
	a, b := NewAllocator(), NewAllocator()
	a.NextID(domain.KindProduct)

	if got := b.NextID(domain.KindProduct); got != 1 {
		t.Fatalf("allocators must not share state, got %d", got)
	}
}
