package finance

import (
	"context"
	"time"

	"github.com/contas/backend/internal/domain/shared"
)

// DefaultMonthlyQuota is the ceiling of obligations per forecast month
const DefaultMonthlyQuota = 100

// MonthlyCounter counts obligations forecast for a calendar month
type MonthlyCounter interface {
	CountForMonth(ctx context.Context, year int, month time.Month) (int64, error)
}

// MonthlyQuotaGuard rejects new obligations once a forecast month is full.
// The count and the later insert are separate store calls, so concurrent
// creators may overshoot the ceiling.
type MonthlyQuotaGuard struct {
	counter MonthlyCounter
	limit   int64
}

// NewMonthlyQuotaGuard creates a guard; a non-positive limit falls back to
// DefaultMonthlyQuota
func NewMonthlyQuotaGuard(counter MonthlyCounter, limit int) *MonthlyQuotaGuard {
	if limit <= 0 {
		limit = DefaultMonthlyQuota
	}
	return &MonthlyQuotaGuard{counter: counter, limit: int64(limit)}
}

// Limit returns the configured ceiling
func (g *MonthlyQuotaGuard) Limit() int64 {
	return g.limit
}

// CountForMonth counts obligations forecast for (year, month) regardless of kind
func (g *MonthlyQuotaGuard) CountForMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	return g.counter.CountForMonth(ctx, year, month)
}

// ExceedsQuota reports whether the month already holds limit or more obligations
func (g *MonthlyQuotaGuard) ExceedsQuota(ctx context.Context, year int, month time.Month) (bool, error) {
	count, err := g.CountForMonth(ctx, year, month)
	if err != nil {
		return false, err
	}
	return count >= g.limit, nil
}

// Check returns ErrMonthlyQuotaExceeded when the month is full
func (g *MonthlyQuotaGuard) Check(ctx context.Context, year int, month time.Month) error {
	exceeded, err := g.ExceedsQuota(ctx, year, month)
	if err != nil {
		return err
	}
	if exceeded {
		return ErrMonthlyQuotaExceeded()
	}
	return nil
}

// ErrMonthlyQuotaExceeded is returned when the month ceiling is reached
func ErrMonthlyQuotaExceeded() error {
	return shared.NewDomainError("QUOTA_EXCEEDED", "Voce nao pode mais cadastrar contas")
}
