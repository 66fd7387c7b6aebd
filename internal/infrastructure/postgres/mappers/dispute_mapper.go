package mappers

import (
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:          model.ID,
		OrderID:     model.OrderID,
		ReturnID:    model.ReturnID,
		InitiatedBy: model.InitiatedBy,
		Reason:      model.Reason,
		Status:      model.Status,
		Resolution:  model.Resolution,
		ResolvedBy:  model.ResolvedBy,
		ResolvedAt:  model.ResolvedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:          dispute.ID,
		OrderID:     dispute.OrderID,
		ReturnID:    dispute.ReturnID,
		InitiatedBy: dispute.InitiatedBy,
		Reason:      dispute.Reason,
		Status:      dispute.Status,
		Resolution:  dispute.Resolution,
		ResolvedBy:  dispute.ResolvedBy,
		ResolvedAt:  dispute.ResolvedAt,
		CreatedAt:   dispute.CreatedAt,
		UpdatedAt:   dispute.UpdatedAt,
	}
}
