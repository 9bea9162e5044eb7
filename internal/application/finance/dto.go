package finance

import (
	partnerapp "github.com/contas/backend/internal/application/partner"
	"github.com/contas/backend/internal/domain/finance"
	"github.com/contas/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ObligationRequest is the body of create and update obligation requests.
// Update accepts data_previsao but does not apply it.
type ObligationRequest struct {
	Description    string            `json:"descricao" binding:"required,min=3,max=30"`
	Amount         decimal.Decimal   `json:"valor" binding:"required,gt=0"`
	Kind           string            `json:"tipo" binding:"required,oneof=PAGAR RECEBER"`
	CounterpartyID *uint             `json:"fornecedor_cliente_id"`
	ForecastDate   *valueobject.Date `json:"data_previsao" binding:"required"`
}

// counterpartyRef returns a copy of the referenced id. Only an absent or
// null id means no reference; 0 must resolve like any other id.
func (r ObligationRequest) counterpartyRef() *uint {
	if r.CounterpartyID == nil {
		return nil
	}
	id := *r.CounterpartyID
	return &id
}

// ObligationResponse represents an obligation in responses, with the
// counterparty embedded instead of its raw id
type ObligationResponse struct {
	ID             uint                             `json:"id"`
	Description    string                           `json:"descricao"`
	Amount         decimal.Decimal                  `json:"valor"`
	Kind           string                           `json:"tipo"`
	ForecastDate   valueobject.Date                 `json:"data_previsao"`
	Counterparty   *partnerapp.CounterpartyResponse `json:"fornecedor"`
	SettlementDate *valueobject.Date                `json:"data_baixa"`
	SettledAmount  *decimal.Decimal                 `json:"valor_baixa"`
	IsSettled      bool                             `json:"esta_baixada"`
}

// MonthlyForecastResponse is one month of the payable forecast
type MonthlyForecastResponse struct {
	Month int             `json:"mes"`
	Total decimal.Decimal `json:"valor_total"`
}

// ToObligationResponse converts a domain obligation to its response
func ToObligationResponse(o *finance.Obligation) ObligationResponse {
	response := ObligationResponse{
		ID:             o.ID,
		Description:    o.Description,
		Amount:         o.Amount,
		Kind:           o.Kind.String(),
		ForecastDate:   o.ForecastDate,
		SettlementDate: o.SettlementDate,
		SettledAmount:  o.SettledAmount,
		IsSettled:      o.IsSettled,
	}
	if o.Counterparty != nil {
		c := partnerapp.ToCounterpartyResponse(o.Counterparty)
		response.Counterparty = &c
	}
	return response
}

// ToObligationResponses converts a slice, never returning nil
func ToObligationResponses(items []finance.Obligation) []ObligationResponse {
	responses := make([]ObligationResponse, len(items))
	for i := range items {
		responses[i] = ToObligationResponse(&items[i])
	}
	return responses
}

// ToMonthlyForecastResponses converts forecast totals to responses
func ToMonthlyForecastResponses(totals []finance.MonthlyTotal) []MonthlyForecastResponse {
	responses := make([]MonthlyForecastResponse, len(totals))
	for i, t := range totals {
		responses[i] = MonthlyForecastResponse{
			Month: int(t.Month),
			Total: t.Total,
		}
	}
	return responses
}
