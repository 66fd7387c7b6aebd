package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending          PaymentStatus = "pending"
	PaymentHeldInEscrow     PaymentStatus = "held_in_escrow"
	PaymentReleasedToSeller PaymentStatus = "released_to_seller"
	PaymentReleasedToBuyer  PaymentStatus = "released_to_buyer"
	PaymentDisputed         PaymentStatus = "disputed"
	PaymentFailed           PaymentStatus = "failed"
)

// Payment is one attempt to collect funds for an order via the external
// gateway. TxRef is globally unique and generated before any gateway call;
// a payment may leave "pending" exactly once.
type Payment struct {
	ID       string
	OrderID  string
	TxRef    string
	Amount   decimal.Decimal
	Currency string
	Status   PaymentStatus
	PaidAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Terminal reports whether the payment can no longer change state on its own.
// A held_in_escrow payment is not terminal: it settles via return or dispute.
func (p *Payment) Terminal() bool {
	switch p.Status {
	case PaymentReleasedToSeller, PaymentReleasedToBuyer, PaymentFailed:
		return true
	}
	return false
}
