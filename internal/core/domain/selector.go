package domain

import "strconv"

// CategorySelector looks a category up either by id or by exact name.
type CategorySelector struct {
	id     int
	name   string
	byName bool
}

func CategoryByID(id int) CategorySelector { return CategorySelector{id: id} }

func CategoryByName(name string) CategorySelector {
	return CategorySelector{name: name, byName: true}
}

// Matches reports whether c is the category the selector points at.
func (s CategorySelector) Matches(c *Category) bool {
	if c == nil {
		return false
	}
	if s.byName {
		return c.Name() == s.name
	}
	return c.ID() == s.id
}

func (s CategorySelector) String() string {
	if s.byName {
		return "name=" + strconv.Quote(s.name)
	}
	return "id=" + strconv.Itoa(s.id)
}
