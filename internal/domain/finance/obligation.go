package finance

import (
	"unicode/utf8"

	"github.com/contas/backend/internal/domain/partner"
	"github.com/contas/backend/internal/domain/shared"
	"github.com/contas/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ObligationKind tells whether an obligation is money owed or money due
type ObligationKind string

const (
	ObligationKindPayable    ObligationKind = "PAGAR"
	ObligationKindReceivable ObligationKind = "RECEBER"
)

// IsValid checks if the kind is a valid ObligationKind
func (k ObligationKind) IsValid() bool {
	switch k {
	case ObligationKindPayable, ObligationKindReceivable:
		return true
	}
	return false
}

// String returns the string representation of ObligationKind
func (k ObligationKind) String() string {
	return string(k)
}

// Description bounds, in characters
const (
	DescriptionMinLength = 3
	DescriptionMaxLength = 30
)

// ObligationResource names the resource in not-found messages
const ObligationResource = "conta a pagar e receber"

// Obligation is a single payable or receivable ledger entry.
// Settlement fields are either all unset or all set by Settle.
type Obligation struct {
	shared.BaseEntity
	Description    string
	Amount         decimal.Decimal
	Kind           ObligationKind
	ForecastDate   valueobject.Date
	SettlementDate *valueobject.Date
	SettledAmount  *decimal.Decimal
	IsSettled      bool
	CounterpartyID *uint

	// Counterparty is the resolved reference, loaded by the repository
	Counterparty *partner.Counterparty
}

// NewObligation creates an unsettled obligation
func NewObligation(
	description string,
	amount decimal.Decimal,
	kind ObligationKind,
	forecastDate valueobject.Date,
	counterpartyID *uint,
) (*Obligation, error) {
	if err := validateTerms(description, amount, kind); err != nil {
		return nil, err
	}
	if forecastDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_FORECAST_DATE", "data_previsao is required")
	}

	return &Obligation{
		Description:    description,
		Amount:         amount,
		Kind:           kind,
		ForecastDate:   forecastDate,
		CounterpartyID: counterpartyID,
	}, nil
}

// Update replaces description, amount, kind and counterparty reference.
// Forecast date and settlement state are left untouched.
func (o *Obligation) Update(description string, amount decimal.Decimal, kind ObligationKind, counterpartyID *uint) error {
	if err := validateTerms(description, amount, kind); err != nil {
		return err
	}

	o.Description = description
	o.Amount = amount
	o.Kind = kind
	if !sameReference(o.CounterpartyID, counterpartyID) {
		o.Counterparty = nil
	}
	o.CounterpartyID = counterpartyID
	return nil
}

// IsFullySettled reports whether the obligation is settled for its current amount
func (o *Obligation) IsFullySettled() bool {
	return o.IsSettled && o.SettledAmount != nil && o.SettledAmount.Equal(o.Amount)
}

// Settle marks the obligation as settled on the given date for the full
// amount. It returns false without changes when already fully settled.
func (o *Obligation) Settle(on valueobject.Date) bool {
	if o.IsFullySettled() {
		return false
	}

	amount := o.Amount
	o.SettlementDate = &on
	o.SettledAmount = &amount
	o.IsSettled = true
	return true
}

// ErrObligationNotFound is returned when an obligation id does not resolve
func ErrObligationNotFound() error {
	return shared.NewNotFoundError(ObligationResource)
}

// ErrUnknownCounterparty is returned when counterparty_id does not resolve
func ErrUnknownCounterparty() error {
	return shared.NewDomainError("INVALID_REFERENCE", "Esse fornecedor não existe")
}

func validateTerms(description string, amount decimal.Decimal, kind ObligationKind) error {
	n := utf8.RuneCountInString(description)
	if n < DescriptionMinLength || n > DescriptionMaxLength {
		return shared.NewDomainError("INVALID_DESCRIPTION", "descricao must have between 3 and 30 characters")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "valor must be greater than zero")
	}
	if !kind.IsValid() {
		return shared.NewDomainError("INVALID_KIND", "tipo must be PAGAR or RECEBER")
	}
	return nil
}

func sameReference(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
