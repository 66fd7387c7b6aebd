package dispute

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"gorm.io/gorm"
)

// StartReview moves an open dispute under review. It marks that an admin
// picked the case up; nothing about the escrow changes yet.
func (uc *Usecase) StartReview(disputeID string) (*domain.Dispute, error) {
	var reviewed *domain.Dispute

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		dispute, err := uc.disputes.GetByIDForUpdate(tx, disputeID)
		if err != nil {
			return err
		}
		if dispute.Status != domain.DisputeOpen {
			return domain.ErrInvalidTransition
		}
		dispute.Status = domain.DisputeUnderReview
		if err := uc.disputes.Update(tx, dispute); err != nil {
			return err
		}
		reviewed = dispute
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

// Resolve rules on a dispute and releases the frozen escrow to the winner.
// Ruling for the buyer completes the return and frees the unit; ruling for
// the seller pays the sale out as if the trial had been kept. The dispute is
// terminal afterwards, so a second resolution attempt fails on the status
// check.
func (uc *Usecase) Resolve(disputeID, resolution, resolvedBy string, winner domain.Party) (*domain.Dispute, error) {
	if winner != domain.PartyBuyer && winner != domain.PartySeller {
		return nil, domain.ErrValidation
	}
	if resolution == "" {
		return nil, domain.ErrValidation
	}

	var resolved *domain.Dispute

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		dispute, err := uc.disputes.GetByIDForUpdate(tx, disputeID)
		if err != nil {
			return err
		}
		if dispute.Status == domain.DisputeResolved {
			return domain.ErrAlreadyProcessed
		}

		order, err := uc.orders.GetByIDForUpdate(tx, dispute.OrderID)
		if err != nil {
			return err
		}
		if _, err := uc.escrow.Settle(tx, order, winner, "dispute_resolved"); err != nil {
			return err
		}

		now := time.Now()
		dispute.Status = domain.DisputeResolved
		dispute.Resolution = resolution
		dispute.ResolvedBy = resolvedBy
		dispute.ResolvedAt = &now
		if err := uc.disputes.Update(tx, dispute); err != nil {
			return err
		}
		resolved = dispute
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DisputesResolvedTotal.WithLabelValues(string(winner)).Inc()
	}
	uc.publishDispute(resolved)
	return resolved, nil
}
