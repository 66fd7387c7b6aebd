package domain

import "time"

// TrialPolicy is the per-product trial sale configuration.
//
// Active does not mean "policy exists": it marks a trial currently
// outstanding for the product. Escrow routing is decided purely on policy
// existence; while Active is true the numeric fields are immutable.
type TrialPolicy struct {
	ID                string
	ProductID         string
	TrialDays         int
	ReturnWindowHours int
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TrialEnd computes the trial deadline for a trial started at the given time.
func (p *TrialPolicy) TrialEnd(startedAt time.Time) time.Time {
	return startedAt.AddDate(0, 0, p.TrialDays)
}

// HasTrial is the trial policy evaluator: a sale is a trial sale exactly
// when a policy record exists for the product, whatever its Active flag says.
func HasTrial(policy *TrialPolicy) bool {
	return policy != nil
}
