package finance

import (
	"context"
	"errors"

	"github.com/contas/backend/internal/domain/finance"
	"github.com/contas/backend/internal/domain/partner"
	"github.com/contas/backend/internal/domain/shared"
	"github.com/contas/backend/internal/domain/shared/valueobject"
	"github.com/contas/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ObligationService handles the obligation ledger, the monthly quota and
// the forecast report
type ObligationService struct {
	obligationRepo   finance.ObligationRepository
	counterpartyRepo partner.CounterpartyRepository
	quota            *finance.MonthlyQuotaGuard
	today            func() valueobject.Date
}

// ObligationServiceOption configures an ObligationService
type ObligationServiceOption func(*ObligationService)

// WithMonthlyQuota overrides the per-month ceiling
func WithMonthlyQuota(limit int) ObligationServiceOption {
	return func(s *ObligationService) {
		s.quota = finance.NewMonthlyQuotaGuard(s.obligationRepo, limit)
	}
}

// WithClock overrides the source of the settlement date
func WithClock(today func() valueobject.Date) ObligationServiceOption {
	return func(s *ObligationService) {
		s.today = today
	}
}

// NewObligationService creates a new ObligationService
func NewObligationService(
	obligationRepo finance.ObligationRepository,
	counterpartyRepo partner.CounterpartyRepository,
	opts ...ObligationServiceOption,
) *ObligationService {
	s := &ObligationService{
		obligationRepo:   obligationRepo,
		counterpartyRepo: counterpartyRepo,
		quota:            finance.NewMonthlyQuotaGuard(obligationRepo, finance.DefaultMonthlyQuota),
		today:            valueobject.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every obligation
func (s *ObligationService) List(ctx context.Context) ([]ObligationResponse, error) {
	items, err := s.obligationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToObligationResponses(items), nil
}

// ListByCounterparty returns the obligations referencing a counterparty.
// An unknown counterparty yields an empty list.
func (s *ObligationService) ListByCounterparty(ctx context.Context, counterpartyID uint) ([]ObligationResponse, error) {
	items, err := s.obligationRepo.FindByCounterparty(ctx, counterpartyID)
	if err != nil {
		return nil, err
	}
	return ToObligationResponses(items), nil
}

// GetByID returns one obligation
func (s *ObligationService) GetByID(ctx context.Context, id uint) (*ObligationResponse, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToObligationResponse(o)
	return &response, nil
}

// Create checks the counterparty reference, then the monthly quota, and
// stores a new unsettled obligation
func (s *ObligationService) Create(ctx context.Context, req ObligationRequest) (_ *ObligationResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "obligation", "create",
		attribute.String("obligation.kind", req.Kind),
		attribute.String("obligation.amount", req.Amount.String()),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	var forecastDate valueobject.Date
	if req.ForecastDate != nil {
		forecastDate = *req.ForecastDate
	}

	o, err := finance.NewObligation(req.Description, req.Amount, finance.ObligationKind(req.Kind), forecastDate, req.counterpartyRef())
	if err != nil {
		return nil, err
	}

	counterparty, err := s.resolveCounterparty(ctx, o.CounterpartyID)
	if err != nil {
		return nil, err
	}

	if err := s.quota.Check(ctx, forecastDate.Year(), forecastDate.Month()); err != nil {
		return nil, err
	}

	if err := s.obligationRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	o.Counterparty = counterparty

	response := ToObligationResponse(o)
	return &response, nil
}

// Update replaces description, amount, kind and counterparty of an
// obligation. The quota is not re-checked and the forecast date is kept.
func (s *ObligationService) Update(ctx context.Context, id uint, req ObligationRequest) (*ObligationResponse, error) {
	counterpartyID := req.counterpartyRef()
	counterparty, err := s.resolveCounterparty(ctx, counterpartyID)
	if err != nil {
		return nil, err
	}

	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.Update(req.Description, req.Amount, finance.ObligationKind(req.Kind), counterpartyID); err != nil {
		return nil, err
	}

	if err := s.obligationRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	o.Counterparty = counterparty

	response := ToObligationResponse(o)
	return &response, nil
}

// Delete removes an obligation
func (s *ObligationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.obligationRepo.Delete(ctx, id)
}

// Settle marks an obligation as settled today for its full amount. An
// obligation already settled for its current amount is returned unchanged.
func (s *ObligationService) Settle(ctx context.Context, id uint) (_ *ObligationResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "obligation", "settle",
		attribute.Int64("obligation.id", int64(id)),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Settle(s.today()) {
		if err := s.obligationRepo.Save(ctx, o); err != nil {
			return nil, err
		}
	}

	response := ToObligationResponse(o)
	return &response, nil
}

// MonthlyForecast sums payable amounts per forecast month of year
func (s *ObligationService) MonthlyForecast(ctx context.Context, year int) (_ []MonthlyForecastResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "obligation", "monthly_forecast",
		attribute.Int("forecast.year", year),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	payables, err := s.obligationRepo.FindByKindAndYear(ctx, finance.ObligationKindPayable, year)
	if err != nil {
		return nil, err
	}
	return ToMonthlyForecastResponses(finance.BuildMonthlyForecast(payables)), nil
}

func (s *ObligationService) find(ctx context.Context, id uint) (*finance.Obligation, error) {
	o, err := s.obligationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, finance.ErrObligationNotFound()
		}
		return nil, err
	}
	return o, nil
}

func (s *ObligationService) resolveCounterparty(ctx context.Context, id *uint) (*partner.Counterparty, error) {
	if id == nil {
		return nil, nil
	}
	c, err := s.counterpartyRepo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, finance.ErrUnknownCounterparty()
		}
		return nil, err
	}
	return c, nil
}
