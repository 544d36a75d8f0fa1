package domain

// Category is a named grouping of products. Only Assign appends to its
// product sequence; products keep a back-reference through their category tag.
type Category struct {
	id       int
	name     string
	products []*Product
}

// NewCategory returns a category with its own empty product sequence.
func NewCategory(id int, name string) *Category {
	return &Category{id: id, name: name, products: make([]*Product, 0)}
}

func (c *Category) ID() int { return c.id }

func (c *Category) Name() string { return c.name }

func (c *Category) SetName(name string) { c.name = name }

// Products returns a copy of the product sequence in assignment order.
func (c *Category) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Category) Len() int { return len(c.products) }

// Assign tags each non-nil product with this category and appends it.
// A product already present is appended again, and a product moved here from
// another category stays listed there too. Returns the number appended.
func (c *Category) Assign(products ...*Product) int {
	n := 0
	for _, p := range products {
		if p == nil {
			continue
		}
		p.SetCategoryID(c.id)
		c.products = append(c.products, p)
		n++
	}
	return n
}
