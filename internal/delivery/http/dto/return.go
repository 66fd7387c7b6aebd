package dto

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
)

type InitiateReturnRequest struct {
	OrderID           string `json:"orderId"`
	HasDefect         bool   `json:"hasDefect,omitempty"`
	DefectDescription string `json:"defectDescription,omitempty"`
}

type InitiateReturnResponse struct {
	ReturnID    string    `json:"returnId"`
	ReturnToken string    `json:"returnToken"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type ScanReturnRequest struct {
	ReturnToken       string `json:"returnToken"`
	Action            string `json:"action"`
	DefectPhotoURL    string `json:"defectPhotoUrl,omitempty"`
	DefectDescription string `json:"defectDescription,omitempty"`
}

type ScanReturnResponse struct {
	Message   string `json:"message"`
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	DisputeID string `json:"disputeId,omitempty"`
}

type ReturnResponse struct {
	ReturnID          string     `json:"returnId"`
	OrderID           string     `json:"orderId"`
	Status            string     `json:"status"`
	RequestedAt       time.Time  `json:"requestedAt"`
	ExpiresAt         time.Time  `json:"expiresAt"`
	ScannedAt         *time.Time `json:"scannedAt,omitempty"`
	DefectPhotoURL    string     `json:"defectPhotoUrl,omitempty"`
	DefectDescription string     `json:"defectDescription,omitempty"`
}

type ListReturnsResponse struct {
	Returns    []ReturnResponse `json:"returns"`
	Pagination Pagination       `json:"pagination"`
}

func ToReturnResponse(ret *domain.Return) ReturnResponse {
	return ReturnResponse{
		ReturnID:          ret.ID,
		OrderID:           ret.OrderID,
		Status:            string(ret.Status),
		RequestedAt:       ret.RequestedAt,
		ExpiresAt:         ret.ExpiresAt,
		ScannedAt:         ret.ScannedAt,
		DefectPhotoURL:    ret.DefectPhotoURL,
		DefectDescription: ret.DefectDescription,
	}
}
