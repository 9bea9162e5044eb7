package persistence

import (
	"context"
	"errors"

	"github.com/contas/backend/internal/domain/partner"
	"github.com/contas/backend/internal/domain/shared"
	"github.com/contas/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCounterpartyRepository implements CounterpartyRepository using GORM
type GormCounterpartyRepository struct {
	db *gorm.DB
}

// NewGormCounterpartyRepository creates a new GormCounterpartyRepository
func NewGormCounterpartyRepository(db *gorm.DB) *GormCounterpartyRepository {
	return &GormCounterpartyRepository{db: db}
}

// FindByID finds a counterparty by its ID
func (r *GormCounterpartyRepository) FindByID(ctx context.Context, id uint) (*partner.Counterparty, error) {
	var m models.CounterpartyModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns every counterparty ordered by id
func (r *GormCounterpartyRepository) FindAll(ctx context.Context) ([]partner.Counterparty, error) {
	var rows []models.CounterpartyModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	counterparties := make([]partner.Counterparty, len(rows))
	for i := range rows {
		counterparties[i] = *rows[i].ToDomain()
	}
	return counterparties, nil
}

// Save creates or updates a counterparty
func (r *GormCounterpartyRepository) Save(ctx context.Context, counterparty *partner.Counterparty) error {
	m := models.CounterpartyModelFromDomain(counterparty)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	counterparty.ID = m.ID
	return nil
}

// Delete deletes a counterparty. Obligations that referenced it keep
// existing without a counterparty.
func (r *GormCounterpartyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CounterpartyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
