package dto

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
)

type CreateOrderRequest struct {
	ProductID string `json:"productId"`
}

type OrderResponse struct {
	OrderID         string     `json:"orderId"`
	BuyerID         string     `json:"buyerId"`
	ProductID       string     `json:"productId"`
	TotalPrice      string     `json:"totalPrice"`
	Status          string     `json:"status"`
	TrialStartedAt  *time.Time `json:"trialStartedAt,omitempty"`
	TrialEndsAt     *time.Time `json:"trialEndsAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	MoneyReleasedTo string     `json:"moneyReleasedTo,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Status   string `json:"status"`
	HasTrial bool   `json:"hasTrial"`
}

type ListOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

func ToOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:         order.ID,
		BuyerID:         order.BuyerID,
		ProductID:       order.ProductID,
		TotalPrice:      order.TotalPrice.StringFixed(2),
		Status:          string(order.Status),
		TrialStartedAt:  order.TrialStartedAt,
		TrialEndsAt:     order.TrialEndsAt,
		CompletedAt:     order.CompletedAt,
		MoneyReleasedTo: order.MoneyReleasedTo,
		CreatedAt:       order.CreatedAt,
	}
}
