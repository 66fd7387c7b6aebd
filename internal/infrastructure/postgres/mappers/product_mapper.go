package mappers

import (
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		OwnerID:     model.OwnerID,
		Name:        model.Name,
		Price:       model.Price,
		IsAvailable: model.IsAvailable,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:                  model.ID,
		Email:               model.Email,
		FirstName:           model.FirstName,
		LastName:            model.LastName,
		Phone:               model.Phone,
		Role:                model.Role,
		GatewaySubaccountID: model.GatewaySubaccountID,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}
