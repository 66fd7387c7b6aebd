package kafka

import "time"

// SettlementEvent is emitted whenever money reaches a terminal destination:
// direct release on confirmation, escrow hold, release to buyer on a
// confirmed return, or release decided by a dispute resolution.
type SettlementEvent struct {
	OrderID       string    `json:"order_id"`
	PaymentID     string    `json:"payment_id"`
	TxRef         string    `json:"tx_ref"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentStatus string    `json:"payment_status"`
	OrderStatus   string    `json:"order_status"`
	ReleasedTo    string    `json:"released_to,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type DisputeEvent struct {
	DisputeID   string    `json:"dispute_id"`
	OrderID     string    `json:"order_id"`
	ReturnID    string    `json:"return_id"`
	InitiatedBy string    `json:"initiated_by"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	Resolution  string    `json:"resolution,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
