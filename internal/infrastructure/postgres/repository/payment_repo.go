package repository

import (
	"errors"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(tx *gorm.DB, payment *domain.Payment) error
	GetByTxRef(txRef string) (*domain.Payment, error)
	GetByTxRefForUpdate(tx *gorm.DB, txRef string) (*domain.Payment, error)
	GetLatestByOrderID(orderID string) (*domain.Payment, error)
	GetHeldByOrderIDForUpdate(tx *gorm.DB, orderID string) (*domain.Payment, error)
	Update(tx *gorm.DB, payment *domain.Payment) error
	FailPendingByOrderID(tx *gorm.DB, orderID string) error
}

type DefaultPaymentRepository struct {
	db *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{db: db}
}

func (r *DefaultPaymentRepository) Create(tx *gorm.DB, payment *domain.Payment) error {
	return tx.Create(mappers.ToGORMPayment(payment)).Error
}

func (r *DefaultPaymentRepository) GetByTxRef(txRef string) (*domain.Payment, error) {
	var model models.PaymentModel
	if err := r.db.First(&model, "tx_ref = ?", txRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultPaymentRepository) GetByTxRefForUpdate(tx *gorm.DB, txRef string) (*domain.Payment, error) {
	var model models.PaymentModel
	if err := lockForUpdate(tx).
		First(&model, "tx_ref = ?", txRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultPaymentRepository) GetLatestByOrderID(orderID string) (*domain.Payment, error) {
	var model models.PaymentModel
	if err := r.db.
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&model), nil
}

// GetHeldByOrderIDForUpdate locks the escrowed (or disputed) payment of an
// order for settlement; returns and dispute resolutions go through here.
func (r *DefaultPaymentRepository) GetHeldByOrderIDForUpdate(tx *gorm.DB, orderID string) (*domain.Payment, error) {
	var model models.PaymentModel
	if err := lockForUpdate(tx).
		Where("order_id = ?", orderID).
		Where("status IN ?", []domain.PaymentStatus{domain.PaymentHeldInEscrow, domain.PaymentDisputed}).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultPaymentRepository) Update(tx *gorm.DB, payment *domain.Payment) error {
	return tx.Model(&models.PaymentModel{}).
		Where("id = ?", payment.ID).
		Select("Status", "PaidAt").
		Updates(mappers.ToGORMPayment(payment)).Error
}

// FailPendingByOrderID marks every still-pending attempt of the order as
// failed before a new attempt is created, keeping at most one non-terminal
// payment per order.
func (r *DefaultPaymentRepository) FailPendingByOrderID(tx *gorm.DB, orderID string) error {
	return tx.Model(&models.PaymentModel{}).
		Where("order_id = ?", orderID).
		Where("status = ?", domain.PaymentPending).
		Update("status", domain.PaymentFailed).Error
}
