package repository

import (
	"errors"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type TrialPolicyRepository interface {
	Create(tx *gorm.DB, policy *domain.TrialPolicy) error
	GetByProductID(productID string) (*domain.TrialPolicy, error)
	GetByProductIDForUpdate(tx *gorm.DB, productID string) (*domain.TrialPolicy, error)
	Update(tx *gorm.DB, policy *domain.TrialPolicy) error
	SetActive(tx *gorm.DB, productID string, active bool) error
	Delete(tx *gorm.DB, productID string) error
}

type DefaultTrialPolicyRepository struct {
	db *gorm.DB
}

func NewDefaultTrialPolicyRepository(db *gorm.DB) *DefaultTrialPolicyRepository {
	return &DefaultTrialPolicyRepository{db: db}
}

func (r *DefaultTrialPolicyRepository) Create(tx *gorm.DB, policy *domain.TrialPolicy) error {
	return tx.Create(mappers.ToGORMTrialPolicy(policy)).Error
}

func (r *DefaultTrialPolicyRepository) GetByProductID(productID string) (*domain.TrialPolicy, error) {
	var model models.TrialPolicyModel
	if err := r.db.First(&model, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTrialPolicy(&model), nil
}

func (r *DefaultTrialPolicyRepository) GetByProductIDForUpdate(tx *gorm.DB, productID string) (*domain.TrialPolicy, error) {
	var model models.TrialPolicyModel
	if err := lockForUpdate(tx).
		First(&model, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTrialPolicy(&model), nil
}

func (r *DefaultTrialPolicyRepository) Update(tx *gorm.DB, policy *domain.TrialPolicy) error {
	return tx.Model(&models.TrialPolicyModel{}).
		Where("id = ?", policy.ID).
		Select("TrialDays", "ReturnWindowHours", "Active").
		Updates(mappers.ToGORMTrialPolicy(policy)).Error
}

func (r *DefaultTrialPolicyRepository) SetActive(tx *gorm.DB, productID string, active bool) error {
	return tx.Model(&models.TrialPolicyModel{}).
		Where("product_id = ?", productID).
		Update("active", active).Error
}

func (r *DefaultTrialPolicyRepository) Delete(tx *gorm.DB, productID string) error {
	return tx.Where("product_id = ?", productID).Delete(&models.TrialPolicyModel{}).Error
}
