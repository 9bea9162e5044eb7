package partner

import (
	"context"
	"errors"

	"github.com/contas/backend/internal/domain/partner"
	"github.com/contas/backend/internal/domain/shared"
)

// CounterpartyService handles the counterparty directory
type CounterpartyService struct {
	counterpartyRepo partner.CounterpartyRepository
}

// NewCounterpartyService creates a new CounterpartyService
func NewCounterpartyService(counterpartyRepo partner.CounterpartyRepository) *CounterpartyService {
	return &CounterpartyService{
		counterpartyRepo: counterpartyRepo,
	}
}

// List returns all counterparties in storage order
func (s *CounterpartyService) List(ctx context.Context) ([]CounterpartyResponse, error) {
	items, err := s.counterpartyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCounterpartyResponses(items), nil
}

// GetByID returns one counterparty
func (s *CounterpartyService) GetByID(ctx context.Context, id uint) (*CounterpartyResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCounterpartyResponse(c)
	return &response, nil
}

// Create stores a new counterparty
func (s *CounterpartyService) Create(ctx context.Context, req CounterpartyRequest) (*CounterpartyResponse, error) {
	c, err := partner.NewCounterparty(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.counterpartyRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCounterpartyResponse(c)
	return &response, nil
}

// Update renames an existing counterparty
func (s *CounterpartyService) Update(ctx context.Context, id uint, req CounterpartyRequest) (*CounterpartyResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.counterpartyRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCounterpartyResponse(c)
	return &response, nil
}

// Delete removes a counterparty. Obligations that reference it are not checked.
func (s *CounterpartyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.counterpartyRepo.Delete(ctx, id)
}

func (s *CounterpartyService) find(ctx context.Context, id uint) (*partner.Counterparty, error) {
	c, err := s.counterpartyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, partner.ErrCounterpartyNotFound()
		}
		return nil, err
	}
	return c, nil
}
