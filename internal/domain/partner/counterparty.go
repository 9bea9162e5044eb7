package partner

import (
	"unicode/utf8"

	"github.com/contas/backend/internal/domain/shared"
)

// Counterparty name bounds, in characters
const (
	CounterpartyNameMinLength = 3
	CounterpartyNameMaxLength = 255
)

// CounterpartyResource names the resource in not-found messages
const CounterpartyResource = "fornecedor cliente"

// Counterparty is a supplier or client that obligations may reference
type Counterparty struct {
	shared.BaseEntity
	Name string
}

// NewCounterparty creates a counterparty with a validated name
func NewCounterparty(name string) (*Counterparty, error) {
	if err := validateCounterpartyName(name); err != nil {
		return nil, err
	}
	return &Counterparty{Name: name}, nil
}

// Rename replaces the counterparty name
func (c *Counterparty) Rename(name string) error {
	if err := validateCounterpartyName(name); err != nil {
		return err
	}
	c.Name = name
	return nil
}

// ErrCounterpartyNotFound is returned when a counterparty id does not resolve
func ErrCounterpartyNotFound() error {
	return shared.NewNotFoundError(CounterpartyResource)
}

func validateCounterpartyName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < CounterpartyNameMinLength {
		return shared.NewDomainError("INVALID_NAME", "nome must have at least 3 characters")
	}
	if n > CounterpartyNameMaxLength {
		return shared.NewDomainError("INVALID_NAME", "nome cannot exceed 255 characters")
	}
	return nil
}
