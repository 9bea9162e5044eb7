package models

import (
	"github.com/contas/backend/internal/domain/shared"
)

// BaseModel provides the primary key shared by all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID uint `gorm:"primaryKey;autoIncrement"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{ID: m.ID}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
}

// All returns every model managed by the schema, in dependency order
func All() []any {
	return []any{
		&CounterpartyModel{},
		&ObligationModel{},
	}
}
