package domain

// Basket is the ordered list of products a user has put in the cart.
// Identical products are kept as separate entries.
type Basket struct {
	items []*Product
}

// NewBasket returns an empty basket, or one holding initial when it is non-nil.
func NewBasket(initial *Product) *Basket {
	b := &Basket{items: make([]*Product, 0)}
	if initial != nil {
		_ = b.AddToCart(initial)
	}
	return b
}

// AddToCart appends p. A nil product is a type mismatch.
func (b *Basket) AddToCart(p *Product) error {
	if p == nil {
		return NewTypeMismatch("product", "Product", "nil")
	}
	b.items = append(b.items, p)
	return nil
}

// Items returns a copy of the basket contents in insertion order.
func (b *Basket) Items() []*Product {
	out := make([]*Product, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Basket) Len() int { return len(b.items) }

// Total sums item prices with plain float addition.
func (b *Basket) Total() float64 {
	var total float64
	for _, p := range b.items {
		total += p.Price()
	}
	return total
}
