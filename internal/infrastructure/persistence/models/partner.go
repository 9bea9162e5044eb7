package models

import (
	"github.com/contas/backend/internal/domain/partner"
)

// CounterpartyModel is the persistence model for the Counterparty domain entity.
type CounterpartyModel struct {
	BaseModel
	Name string `gorm:"column:nome;type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (CounterpartyModel) TableName() string {
	return "fornecedor_cliente"
}

// ToDomain converts the persistence model to a domain Counterparty entity.
func (m *CounterpartyModel) ToDomain() *partner.Counterparty {
	return &partner.Counterparty{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Counterparty entity.
func (m *CounterpartyModel) FromDomain(c *partner.Counterparty) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
}

// CounterpartyModelFromDomain creates a new persistence model from a domain Counterparty entity.
func CounterpartyModelFromDomain(c *partner.Counterparty) *CounterpartyModel {
	m := &CounterpartyModel{}
	m.FromDomain(c)
	return m
}
