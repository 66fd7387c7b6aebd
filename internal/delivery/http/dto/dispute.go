package dto

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
)

type ResolveDisputeRequest struct {
	Resolution string `json:"resolution"`
	Winner     string `json:"winner"`
}

type DisputeResponse struct {
	DisputeID   string     `json:"disputeId"`
	OrderID     string     `json:"orderId"`
	ReturnID    string     `json:"returnId"`
	InitiatedBy string     `json:"initiatedBy"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	Resolution  string     `json:"resolution,omitempty"`
	ResolvedBy  string     `json:"resolvedBy,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ListDisputesResponse struct {
	Disputes   []DisputeResponse `json:"disputes"`
	Pagination Pagination        `json:"pagination"`
}

func ToDisputeResponse(dispute *domain.Dispute) DisputeResponse {
	return DisputeResponse{
		DisputeID:   dispute.ID,
		OrderID:     dispute.OrderID,
		ReturnID:    dispute.ReturnID,
		InitiatedBy: dispute.InitiatedBy,
		Reason:      dispute.Reason,
		Status:      string(dispute.Status),
		Resolution:  dispute.Resolution,
		ResolvedBy:  dispute.ResolvedBy,
		ResolvedAt:  dispute.ResolvedAt,
		CreatedAt:   dispute.CreatedAt,
	}
}
