package mappers

import (
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:              model.ID,
		BuyerID:         model.BuyerID,
		ProductID:       model.ProductID,
		TotalPrice:      model.TotalPrice,
		Status:          model.Status,
		TrialStartedAt:  model.TrialStartedAt,
		TrialEndsAt:     model.TrialEndsAt,
		CompletedAt:     model.CompletedAt,
		MoneyReleasedTo: model.MoneyReleasedTo,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:              order.ID,
		BuyerID:         order.BuyerID,
		ProductID:       order.ProductID,
		TotalPrice:      order.TotalPrice,
		Status:          order.Status,
		TrialStartedAt:  order.TrialStartedAt,
		TrialEndsAt:     order.TrialEndsAt,
		CompletedAt:     order.CompletedAt,
		MoneyReleasedTo: order.MoneyReleasedTo,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
