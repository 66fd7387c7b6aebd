package returns

import (
	"context"
	"log"
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"gorm.io/gorm"
)

// ExpireReturns closes every pending return whose hand-over window elapsed
// without a scan. The buyer kept the product past the deadline, so escrow
// settles to the seller. Each return expires in its own transaction; a scan
// racing the sweep wins because the locked re-read rechecks the status.
func (uc *Usecase) ExpireReturns(ctx context.Context) error {
	expired, err := uc.returns.FindExpiredPending(time.Now())
	if err != nil {
		return err
	}

	for _, candidate := range expired {
		err := uc.db.Transaction(func(tx *gorm.DB) error {
			ret, err := uc.returns.GetByTokenForUpdate(tx, candidate.ReturnToken)
			if err != nil {
				return err
			}
			if ret.Status != domain.ReturnPending {
				return nil
			}
			if time.Now().Before(ret.ExpiresAt) {
				return nil
			}

			ret.Status = domain.ReturnExpired
			if err := uc.returns.Update(tx, ret); err != nil {
				return err
			}

			order, err := uc.orders.GetByIDForUpdate(tx, ret.OrderID)
			if err != nil {
				return err
			}
			_, err = uc.escrow.Settle(tx, order, domain.PartySeller, "return_expired")
			return err
		})
		if err != nil {
			log.Printf("failed to expire return for order %s: %v", candidate.OrderID, err)
			continue
		}
		if uc.metrics != nil {
			uc.metrics.SweepTransitionsTotal.WithLabelValues("return_expired").Inc()
		}
	}
	return nil
}
