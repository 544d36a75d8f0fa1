package ports

import "github.com/99minutos/shop-catalog/internal/core/domain"

// IDAllocator issues strictly increasing ids starting at 1, one sequence per
// entity kind.
type IDAllocator interface {
	NextID(kind domain.EntityKind) int
}
