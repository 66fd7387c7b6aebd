package escrow

import (
	"context"
	"log"
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"gorm.io/gorm"
)

// SettleExpiredTrials releases escrow to the seller for every trial_active
// order whose window elapsed without a return request. Each order settles in
// its own transaction; a concurrent return initiation wins the race because
// the locked re-read rechecks the status.
func (uc *Usecase) SettleExpiredTrials(ctx context.Context) error {
	expired, err := uc.orders.FindTrialExpired(time.Now())
	if err != nil {
		return err
	}

	for _, candidate := range expired {
		err := uc.db.Transaction(func(tx *gorm.DB) error {
			order, err := uc.orders.GetByIDForUpdate(tx, candidate.ID)
			if err != nil {
				return err
			}
			if order.Status != domain.OrderTrialActive {
				return nil
			}
			if order.TrialEndsAt == nil || time.Now().Before(*order.TrialEndsAt) {
				return nil
			}
			_, err = uc.Settle(tx, order, domain.PartySeller, "trial_expired")
			return err
		})
		if err != nil {
			log.Printf("failed to settle expired trial for order %s: %v", candidate.ID, err)
			continue
		}
		if uc.metrics != nil {
			uc.metrics.SweepTransitionsTotal.WithLabelValues("trial_expired").Inc()
		}
	}
	return nil
}
