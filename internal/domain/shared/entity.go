package shared

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uint
}

// BaseEntity provides the identity shared by all entities. IDs are assigned
// by the store on first save and start at 1.
type BaseEntity struct {
	ID uint
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uint {
	return e.ID
}

// IsNew reports whether the entity has not been persisted yet
func (e *BaseEntity) IsNew() bool {
	return e.ID == 0
}
