package domain

// EntityKind selects an independent id sequence.
type EntityKind string

const (
	KindProduct  EntityKind = "product"
	KindCategory EntityKind = "category"
)
