package mappers

import (
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainReturn(model *models.ReturnModel) *domain.Return {
	return &domain.Return{
		ID:                model.ID,
		OrderID:           model.OrderID,
		ReturnToken:       model.ReturnToken,
		Status:            model.Status,
		RequestedAt:       model.RequestedAt,
		ExpiresAt:         model.ExpiresAt,
		ScannedAt:         model.ScannedAt,
		DefectPhotoURL:    model.DefectPhotoURL,
		DefectDescription: model.DefectDescription,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMReturn(ret *domain.Return) *models.ReturnModel {
	return &models.ReturnModel{
		ID:                ret.ID,
		OrderID:           ret.OrderID,
		ReturnToken:       ret.ReturnToken,
		Status:            ret.Status,
		RequestedAt:       ret.RequestedAt,
		ExpiresAt:         ret.ExpiresAt,
		ScannedAt:         ret.ScannedAt,
		DefectPhotoURL:    ret.DefectPhotoURL,
		DefectDescription: ret.DefectDescription,
		CreatedAt:         ret.CreatedAt,
		UpdatedAt:         ret.UpdatedAt,
	}
}
