package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen        DisputeStatus = "open"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
)

// Party names a side of the escrow: settlement releases held funds to
// exactly one of them.
type Party string

const (
	PartyBuyer  Party = "buyer"
	PartySeller Party = "seller"
)

// Dispute is a disagreement raised during return inspection.
type Dispute struct {
	ID          string
	OrderID     string
	ReturnID    string
	InitiatedBy string
	Reason      string
	Status      DisputeStatus
	Resolution  string
	ResolvedBy  string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
