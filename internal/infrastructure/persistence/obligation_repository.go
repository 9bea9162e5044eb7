package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/contas/backend/internal/domain/finance"
	"github.com/contas/backend/internal/domain/shared"
	"github.com/contas/backend/internal/domain/shared/valueobject"
	"github.com/contas/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormObligationRepository implements ObligationRepository using GORM
type GormObligationRepository struct {
	db *gorm.DB
}

// NewGormObligationRepository creates a new GormObligationRepository
func NewGormObligationRepository(db *gorm.DB) *GormObligationRepository {
	return &GormObligationRepository{db: db}
}

// withCounterparty scopes a read so the referenced counterparty is loaded
func (r *GormObligationRepository) withCounterparty(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Counterparty")
}

// FindByID finds an obligation by its ID
func (r *GormObligationRepository) FindByID(ctx context.Context, id uint) (*finance.Obligation, error) {
	var m models.ObligationModel
	if err := r.withCounterparty(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll returns every obligation ordered by id
func (r *GormObligationRepository) FindAll(ctx context.Context) ([]finance.Obligation, error) {
	var rows []models.ObligationModel
	if err := r.withCounterparty(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toObligations(rows), nil
}

// FindByCounterparty returns the obligations referencing a counterparty
func (r *GormObligationRepository) FindByCounterparty(ctx context.Context, counterpartyID uint) ([]finance.Obligation, error) {
	var rows []models.ObligationModel
	if err := r.withCounterparty(ctx).
		Where("fornecedor_cliente_id = ?", counterpartyID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toObligations(rows), nil
}

// FindByKindAndYear returns obligations of one kind forecast within year,
// ordered by forecast date then id
func (r *GormObligationRepository) FindByKindAndYear(ctx context.Context, kind finance.ObligationKind, year int) ([]finance.Obligation, error) {
	start := valueobject.NewDate(year, time.January, 1)
	end := valueobject.NewDate(year+1, time.January, 1)

	var rows []models.ObligationModel
	if err := r.withCounterparty(ctx).
		Where("tipo = ? AND data_previsao >= ? AND data_previsao < ?", string(kind), start, end).
		Order("data_previsao, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toObligations(rows), nil
}

// CountForMonth counts obligations of any kind forecast for (year, month)
func (r *GormObligationRepository) CountForMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	start, end := valueobject.NewDate(year, month, 1).MonthRange()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ObligationModel{}).
		Where("data_previsao >= ? AND data_previsao < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an obligation without touching its counterparty
func (r *GormObligationRepository) Save(ctx context.Context, obligation *finance.Obligation) error {
	m := models.ObligationModelFromDomain(obligation)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return err
	}
	obligation.ID = m.ID
	return nil
}

// Delete deletes an obligation
func (r *GormObligationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ObligationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toObligations(rows []models.ObligationModel) []finance.Obligation {
	obligations := make([]finance.Obligation, len(rows))
	for i := range rows {
		obligations[i] = *rows[i].ToDomain()
	}
	return obligations
}
