package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending         OrderStatus = "pending"
	OrderTrialActive     OrderStatus = "trial_active"
	OrderReturnRequested OrderStatus = "return_requested"
	OrderPaid            OrderStatus = "paid"
	OrderReturned        OrderStatus = "returned"
	OrderDisputed        OrderStatus = "disputed"
	OrderCancelled       OrderStatus = "cancelled"
)

// Order is a buyer's commitment to purchase one product unit.
// TotalPrice is snapshotted from the product at creation time and
// never recomputed from the live product price.
type Order struct {
	ID              string
	BuyerID         string
	ProductID       string
	TotalPrice      decimal.Decimal
	Status          OrderStatus
	TrialStartedAt  *time.Time
	TrialEndsAt     *time.Time
	CompletedAt     *time.Time
	MoneyReleasedTo string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Cancellable reports whether the order may still be cancelled by the buyer.
// Payment-derived transitions are owned by the escrow coordinator.
func (o *Order) Cancellable() bool {
	return o.Status == OrderPending || o.Status == OrderTrialActive
}

// Payable reports whether a checkout may be initiated for the order.
func (o *Order) Payable() bool {
	return o.Status == OrderPending || o.Status == OrderTrialActive
}
