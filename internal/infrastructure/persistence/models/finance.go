package models

import (
	"github.com/contas/backend/internal/domain/finance"
	"github.com/contas/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ObligationModel is the persistence model for the Obligation domain entity.
type ObligationModel struct {
	BaseModel
	Description    string                 `gorm:"column:descricao;type:varchar(30);not null"`
	Amount         decimal.Decimal        `gorm:"column:valor;type:numeric;not null"`
	Kind           finance.ObligationKind `gorm:"column:tipo;type:varchar(30);not null"`
	ForecastDate   valueobject.Date       `gorm:"column:data_previsao;type:date;not null;index"`
	SettlementDate *valueobject.Date      `gorm:"column:data_baixa;type:date"`
	SettledAmount  *decimal.Decimal       `gorm:"column:valor_baixa;type:numeric"`
	IsSettled      bool                   `gorm:"column:esta_baixada;not null;default:false"`
	CounterpartyID *uint                  `gorm:"column:fornecedor_cliente_id;index"`

	Counterparty *CounterpartyModel `gorm:"foreignKey:CounterpartyID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GORM
func (ObligationModel) TableName() string {
	return "contas_a_pagar_e_receber"
}

// ToDomain converts the persistence model to a domain Obligation entity,
// including the counterparty when it was preloaded.
func (m *ObligationModel) ToDomain() *finance.Obligation {
	o := &finance.Obligation{
		BaseEntity:     m.BaseModel.ToDomain(),
		Description:    m.Description,
		Amount:         m.Amount,
		Kind:           m.Kind,
		ForecastDate:   m.ForecastDate,
		SettlementDate: m.SettlementDate,
		SettledAmount:  m.SettledAmount,
		IsSettled:      m.IsSettled,
		CounterpartyID: m.CounterpartyID,
	}
	if m.Counterparty != nil {
		o.Counterparty = m.Counterparty.ToDomain()
	}
	return o
}

// FromDomain populates the persistence model from a domain Obligation entity.
// The counterparty association is never written through the obligation.
func (m *ObligationModel) FromDomain(o *finance.Obligation) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Description = o.Description
	m.Amount = o.Amount
	m.Kind = o.Kind
	m.ForecastDate = o.ForecastDate
	m.SettlementDate = o.SettlementDate
	m.SettledAmount = o.SettledAmount
	m.IsSettled = o.IsSettled
	m.CounterpartyID = o.CounterpartyID
	m.Counterparty = nil
}

// ObligationModelFromDomain creates a new persistence model from a domain Obligation entity.
func ObligationModelFromDomain(o *finance.Obligation) *ObligationModel {
	m := &ObligationModel{}
	m.FromDomain(o)
	return m
}
