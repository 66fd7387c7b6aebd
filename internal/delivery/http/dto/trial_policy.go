package dto

import "github.com/sewasew/escrow-service/internal/domain"

type TrialPolicyRequest struct {
	TrialDays         int `json:"trialDays"`
	ReturnWindowHours int `json:"returnWindowHours"`
}

type TrialPolicyResponse struct {
	PolicyID          string `json:"policyId"`
	ProductID         string `json:"productId"`
	TrialDays         int    `json:"trialDays"`
	ReturnWindowHours int    `json:"returnWindowHours"`
	Active            bool   `json:"active"`
}

func ToTrialPolicyResponse(policy *domain.TrialPolicy) TrialPolicyResponse {
	return TrialPolicyResponse{
		PolicyID:          policy.ID,
		ProductID:         policy.ProductID,
		TrialDays:         policy.TrialDays,
		ReturnWindowHours: policy.ReturnWindowHours,
		Active:            policy.Active,
	}
}
