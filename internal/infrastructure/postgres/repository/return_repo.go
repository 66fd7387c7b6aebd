package repository

import (
	"errors"
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type ReturnRepository interface {
	Create(tx *gorm.DB, ret *domain.Return) error
	GetByOrderID(orderID string) (*domain.Return, error)
	GetByTokenForUpdate(tx *gorm.DB, token string) (*domain.Return, error)
	Update(tx *gorm.DB, ret *domain.Return) error
	ExistsForOrder(tx *gorm.DB, orderID string) (bool, error)
	FindExpiredPending(now time.Time) ([]*domain.Return, error)
	ListBySeller(sellerID string, status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error)
	ListByBuyer(buyerID string, status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error)
}

type DefaultReturnRepository struct {
	db *gorm.DB
}

func NewDefaultReturnRepository(db *gorm.DB) *DefaultReturnRepository {
	return &DefaultReturnRepository{db: db}
}

func (r *DefaultReturnRepository) Create(tx *gorm.DB, ret *domain.Return) error {
	return tx.Create(mappers.ToGORMReturn(ret)).Error
}

func (r *DefaultReturnRepository) GetByOrderID(orderID string) (*domain.Return, error) {
	var model models.ReturnModel
	if err := r.db.First(&model, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReturnNotFound
		}
		return nil, err
	}
	return mappers.ToDomainReturn(&model), nil
}

// GetByTokenForUpdate looks the return up by its single-use token and locks
// the row: of two concurrent scans racing on a token only one observes
// status pending.
func (r *DefaultReturnRepository) GetByTokenForUpdate(tx *gorm.DB, token string) (*domain.Return, error) {
	var model models.ReturnModel
	if err := lockForUpdate(tx).
		First(&model, "return_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReturnNotFound
		}
		return nil, err
	}
	return mappers.ToDomainReturn(&model), nil
}

func (r *DefaultReturnRepository) Update(tx *gorm.DB, ret *domain.Return) error {
	return tx.Model(&models.ReturnModel{}).
		Where("id = ?", ret.ID).
		Select("Status", "ScannedAt", "DefectPhotoURL", "DefectDescription").
		Updates(mappers.ToGORMReturn(ret)).Error
}

func (r *DefaultReturnRepository) ExistsForOrder(tx *gorm.DB, orderID string) (bool, error) {
	var count int64
	err := tx.Model(&models.ReturnModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count > 0, err
}

func (r *DefaultReturnRepository) FindExpiredPending(now time.Time) ([]*domain.Return, error) {
	var returnModels []models.ReturnModel
	if err := r.db.
		Where("status = ?", domain.ReturnPending).
		Where("expires_at < ?", now).
		Find(&returnModels).Error; err != nil {
		return nil, err
	}

	returns := make([]*domain.Return, len(returnModels))
	for i, model := range returnModels {
		returns[i] = mappers.ToDomainReturn(&model)
	}
	return returns, nil
}

func (r *DefaultReturnRepository) ListBySeller(sellerID string, status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error) {
	query := r.db.Model(&models.ReturnModel{}).
		Joins("JOIN orders ON orders.id = returns.order_id").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.owner_id = ?", sellerID)
	return r.list(query, status, page, limit)
}

func (r *DefaultReturnRepository) ListByBuyer(buyerID string, status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error) {
	query := r.db.Model(&models.ReturnModel{}).
		Joins("JOIN orders ON orders.id = returns.order_id").
		Where("orders.buyer_id = ?", buyerID)
	return r.list(query, status, page, limit)
}

func (r *DefaultReturnRepository) list(query *gorm.DB, status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error) {
	if status != "" {
		query = query.Where("returns.status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var returnModels []models.ReturnModel
	if err := query.
		Order("returns.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&returnModels).Error; err != nil {
		return nil, 0, err
	}

	returns := make([]*domain.Return, len(returnModels))
	for i, model := range returnModels {
		returns[i] = mappers.ToDomainReturn(&model)
	}
	return returns, total, nil
}
