package mappers

import (
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainTrialPolicy(model *models.TrialPolicyModel) *domain.TrialPolicy {
	return &domain.TrialPolicy{
		ID:                model.ID,
		ProductID:         model.ProductID,
		TrialDays:         model.TrialDays,
		ReturnWindowHours: model.ReturnWindowHours,
		Active:            model.Active,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMTrialPolicy(policy *domain.TrialPolicy) *models.TrialPolicyModel {
	return &models.TrialPolicyModel{
		ID:                policy.ID,
		ProductID:         policy.ProductID,
		TrialDays:         policy.TrialDays,
		ReturnWindowHours: policy.ReturnWindowHours,
		Active:            policy.Active,
		CreatedAt:         policy.CreatedAt,
		UpdatedAt:         policy.UpdatedAt,
	}
}
