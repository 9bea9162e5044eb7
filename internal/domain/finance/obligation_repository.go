package finance

import (
	"context"
	"time"

	"github.com/contas/backend/internal/domain/shared"
)

// ObligationRepository defines the interface for obligation persistence.
// Reads return obligations with their counterparty resolved when it exists.
// FindAll orders by id.
type ObligationRepository interface {
	shared.Repository[Obligation]

	// FindByCounterparty returns the obligations referencing a counterparty
	FindByCounterparty(ctx context.Context, counterpartyID uint) ([]Obligation, error)

	// FindByKindAndYear returns obligations of one kind whose forecast date
	// falls in year, ordered by forecast date then id
	FindByKindAndYear(ctx context.Context, kind ObligationKind, year int) ([]Obligation, error)

	// CountForMonth counts obligations of any kind forecast for (year, month)
	CountForMonth(ctx context.Context, year int, month time.Month) (int64, error)
}
