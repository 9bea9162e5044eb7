package partner

import (
	"github.com/contas/backend/internal/domain/shared"
)

// CounterpartyRepository defines the interface for counterparty persistence.
// FindAll orders by id.
type CounterpartyRepository interface {
	shared.Repository[Counterparty]
}
