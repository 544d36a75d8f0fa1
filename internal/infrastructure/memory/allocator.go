// Package memory holds the in-process adapters for the shop core: the id
// allocator and the product, category and user repositories.
//
// None of the types here are safe for concurrent mutation. Callers that share
// them across goroutines must serialize access themselves.
package memory

import "github.com/99minutos/shop-catalog/internal/core/domain"

// Allocator implements ports.IDAllocator with one counter per entity kind.
type Allocator struct {
	counters map[domain.EntityKind]int
}

func NewAllocator() *Allocator {
	return &Allocator{counters: make(map[domain.EntityKind]int)}
}

// NextID returns the next id for kind; the first call per kind returns 1.
func (a *Allocator) NextID(kind domain.EntityKind) int {
	a.counters[kind]++
	return a.counters[kind]
}
