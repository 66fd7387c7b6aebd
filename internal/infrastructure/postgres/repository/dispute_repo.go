package repository

import (
	"errors"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DisputeRepository interface {
	Create(tx *gorm.DB, dispute *domain.Dispute) error
	GetByID(disputeID string) (*domain.Dispute, error)
	GetByIDForUpdate(tx *gorm.DB, disputeID string) (*domain.Dispute, error)
	GetByOrderID(orderID string) (*domain.Dispute, error)
	HasHandledForReturn(tx *gorm.DB, returnID string) (bool, error)
	Update(tx *gorm.DB, dispute *domain.Dispute) error
	List(status domain.DisputeStatus, page, limit int) ([]*domain.Dispute, int64, error)
}

type DefaultDisputeRepository struct {
	db *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{db: db}
}

func (r *DefaultDisputeRepository) Create(tx *gorm.DB, dispute *domain.Dispute) error {
	return tx.Create(mappers.ToGORMDispute(dispute)).Error
}

func (r *DefaultDisputeRepository) GetByID(disputeID string) (*domain.Dispute, error) {
	var model models.DisputeModel
	if err := r.db.First(&model, "id = ?", disputeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&model), nil
}

func (r *DefaultDisputeRepository) GetByIDForUpdate(tx *gorm.DB, disputeID string) (*domain.Dispute, error) {
	var model models.DisputeModel
	if err := lockForUpdate(tx).
		First(&model, "id = ?", disputeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&model), nil
}

func (r *DefaultDisputeRepository) GetByOrderID(orderID string) (*domain.Dispute, error) {
	var model models.DisputeModel
	if err := r.db.
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&model), nil
}

// HasHandledForReturn reports whether the return already carries a dispute
// that moved past open; such a return cannot spawn another dispute.
func (r *DefaultDisputeRepository) HasHandledForReturn(tx *gorm.DB, returnID string) (bool, error) {
	var count int64
	err := tx.Model(&models.DisputeModel{}).
		Where("return_id = ?", returnID).
		Where("status <> ?", domain.DisputeOpen).
		Count(&count).Error
	return count > 0, err
}

func (r *DefaultDisputeRepository) Update(tx *gorm.DB, dispute *domain.Dispute) error {
	return tx.Model(&models.DisputeModel{}).
		Where("id = ?", dispute.ID).
		Select("Status", "Resolution", "ResolvedBy", "ResolvedAt").
		Updates(mappers.ToGORMDispute(dispute)).Error
}

func (r *DefaultDisputeRepository) List(status domain.DisputeStatus, page, limit int) ([]*domain.Dispute, int64, error) {
	query := r.db.Model(&models.DisputeModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var disputeModels []models.DisputeModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&disputeModels).Error; err != nil {
		return nil, 0, err
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, model := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&model)
	}
	return disputes, total, nil
}
