package domain

import "math"

// Product is a priced, rated catalog item. A zero categoryID means the product
// has not been tagged with a category; allocated ids start at 1.
type Product struct {
	id         int
	name       string
	price      float64
	rating     float64
	categoryID int
}

// NewProduct validates every field and returns the product, or the first
// validation error without building anything.
func NewProduct(id int, name string, price, rating float64) (*Product, error) {
	if err := ValidateProduct(price, rating); err != nil {
		return nil, err
	}
	return &Product{id: id, name: name, price: price, rating: rating}, nil
}

// ValidateProduct runs the checks NewProduct applies to price and rating.
func ValidateProduct(price, rating float64) error {
	if err := checkPrice(price); err != nil {
		return err
	}
	return checkFinite("rating", rating)
}

func (p *Product) ID() int { return p.id }

func (p *Product) Name() string { return p.name }

func (p *Product) SetName(name string) { p.name = name }

func (p *Product) Price() float64 { return p.price }

// SetPrice rejects NaN, infinities and negative values.
func (p *Product) SetPrice(price float64) error {
	if err := checkPrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) Rating() float64 { return p.rating }

func (p *Product) SetRating(rating float64) error {
	if err := checkFinite("rating", rating); err != nil {
		return err
	}
	p.rating = rating
	return nil
}

// CategoryID returns the category tag and whether one is set.
func (p *Product) CategoryID() (int, bool) {
	return p.categoryID, p.categoryID != 0
}

// SetCategoryID overwrites the category tag. It does not touch any Category's
// product sequence.
func (p *Product) SetCategoryID(id int) { p.categoryID = id }

func checkPrice(price float64) error {
	if err := checkFinite("price", price); err != nil {
		return err
	}
	if price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

func checkFinite(field string, v float64) error {
	switch {
	case math.IsNaN(v):
		return NewTypeMismatch(field, "number", "NaN")
	case math.IsInf(v, 0):
		return NewTypeMismatch(field, "number", "infinity")
	}
	return nil
}
