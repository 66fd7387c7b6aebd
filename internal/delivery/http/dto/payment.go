package dto

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
)

type InitiatePaymentRequest struct {
	OrderID string `json:"orderId"`
}

type InitiatePaymentResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	TxRef       string `json:"txRef"`
	HasTrial    bool   `json:"hasTrial"`
}

type VerifyPaymentRequest struct {
	TxRef string `json:"txRef"`
}

type PaymentResponse struct {
	PaymentID string     `json:"paymentId"`
	OrderID   string     `json:"orderId"`
	TxRef     string     `json:"txRef"`
	Amount    string     `json:"amount"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

type PaymentStateResponse struct {
	Payment PaymentResponse `json:"payment"`
	Order   OrderResponse   `json:"order"`
}

func ToPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		TxRef:     payment.TxRef,
		Amount:    payment.Amount.StringFixed(2),
		Currency:  payment.Currency,
		Status:    string(payment.Status),
		PaidAt:    payment.PaidAt,
	}
}
