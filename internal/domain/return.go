package domain

import "time"

type ReturnStatus string

const (
	ReturnPending       ReturnStatus = "pending"
	ReturnConfirmed     ReturnStatus = "confirmed"
	ReturnDefectClaimed ReturnStatus = "defect_claimed"
	ReturnExpired       ReturnStatus = "expired"
)

type ScanAction string

const (
	ScanConfirm     ScanAction = "confirm"
	ScanClaimDefect ScanAction = "claim_defect"
)

// ReturnGracePeriod extends the return window past the trial deadline so the
// buyer who initiated a return in time can still hand the product over.
const ReturnGracePeriod = 7 * 24 * time.Hour

// Return is a buyer's request to return a product during its trial window.
// ReturnToken is a single-use credential presented at in-person inspection;
// once consumed by a scan it cannot be reused.
type Return struct {
	ID                string
	OrderID           string
	ReturnToken       string
	Status            ReturnStatus
	RequestedAt       time.Time
	ExpiresAt         time.Time
	ScannedAt         *time.Time
	DefectPhotoURL    string
	DefectDescription string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
