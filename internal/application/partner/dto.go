package partner

import (
	"github.com/contas/backend/internal/domain/partner"
)

// CounterpartyRequest is the body of create and update counterparty requests
type CounterpartyRequest struct {
	Name string `json:"nome" binding:"required,min=3,max=255"`
}

// CounterpartyResponse represents a counterparty in responses
type CounterpartyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

// ToCounterpartyResponse converts a domain counterparty to its response
func ToCounterpartyResponse(c *partner.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

// ToCounterpartyResponses converts a slice, never returning nil
func ToCounterpartyResponses(items []partner.Counterparty) []CounterpartyResponse {
	responses := make([]CounterpartyResponse, len(items))
	for i := range items {
		responses[i] = ToCounterpartyResponse(&items[i])
	}
	return responses
}
