package repository

import (
	"errors"
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(tx *gorm.DB, order *domain.Order) error
	GetByID(orderID string) (*domain.Order, error)
	GetByIDForUpdate(tx *gorm.DB, orderID string) (*domain.Order, error)
	Update(tx *gorm.DB, order *domain.Order) error
	UpdateStatus(tx *gorm.DB, orderID string, status domain.OrderStatus) error
	ListByBuyer(buyerID string, page, limit int) ([]*domain.Order, int64, error)
	FindTrialExpired(now time.Time) ([]*domain.Order, error)
}

type DefaultOrderRepository struct {
	db *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{db: db}
}

func (r *DefaultOrderRepository) Create(tx *gorm.DB, order *domain.Order) error {
	return tx.Create(mappers.ToGORMOrder(order)).Error
}

func (r *DefaultOrderRepository) GetByID(orderID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := r.db.First(&model, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) GetByIDForUpdate(tx *gorm.DB, orderID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := lockForUpdate(tx).
		First(&model, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

// Update persists every mutable field of the order, nil pointers included,
// so settlement can clear or set trial timestamps in one write.
func (r *DefaultOrderRepository) Update(tx *gorm.DB, order *domain.Order) error {
	return tx.Model(&models.OrderModel{}).
		Where("id = ?", order.ID).
		Select("Status", "TrialStartedAt", "TrialEndsAt", "CompletedAt", "MoneyReleasedTo").
		Updates(mappers.ToGORMOrder(order)).Error
}

func (r *DefaultOrderRepository) UpdateStatus(tx *gorm.DB, orderID string, status domain.OrderStatus) error {
	return tx.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *DefaultOrderRepository) ListByBuyer(buyerID string, page, limit int) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	query := r.db.Model(&models.OrderModel{}).Where("buyer_id = ?", buyerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = mappers.ToDomainOrder(&model)
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) FindTrialExpired(now time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.
		Where("status = ?", domain.OrderTrialActive).
		Where("trial_ends_at < ?", now).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = mappers.ToDomainOrder(&model)
	}
	return orders, nil
}
