package repository

import (
	"errors"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type ProductRepository interface {
	GetByID(productID string) (*domain.Product, error)
	GetByIDForUpdate(tx *gorm.DB, productID string) (*domain.Product, error)
	SetAvailability(tx *gorm.DB, productID string, available bool) error
}

type DefaultProductRepository struct {
	db *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{db: db}
}

func (r *DefaultProductRepository) GetByID(productID string) (*domain.Product, error) {
	var model models.ProductModel
	if err := r.db.First(&model, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&model), nil
}

func (r *DefaultProductRepository) GetByIDForUpdate(tx *gorm.DB, productID string) (*domain.Product, error) {
	var model models.ProductModel
	if err := lockForUpdate(tx).
		First(&model, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&model), nil
}

func (r *DefaultProductRepository) SetAvailability(tx *gorm.DB, productID string, available bool) error {
	return tx.Model(&models.ProductModel{}).
		Where("id = ?", productID).
		Update("is_available", available).Error
}
