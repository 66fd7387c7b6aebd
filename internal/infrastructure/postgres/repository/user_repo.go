package repository

import (
	"errors"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(userID string) (*domain.User, error)
	SetGatewaySubaccount(tx *gorm.DB, userID, subaccountID string) error
}

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (r *DefaultUserRepository) GetByID(userID string) (*domain.User, error) {
	var model models.UserModel
	if err := r.db.First(&model, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) SetGatewaySubaccount(tx *gorm.DB, userID, subaccountID string) error {
	return tx.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("gateway_subaccount_id", subaccountID).Error
}
