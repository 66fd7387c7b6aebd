package returns

import (
	"time"

	"github.com/google/uuid"
	"github.com/sewasew/escrow-service/internal/domain"
	"gorm.io/gorm"
)

// InitiateReturn opens a return for an order whose trial is still running
// and mints the single-use token the buyer will present at inspection.
// The return window extends past the trial deadline by a grace period, so
// a return opened on the last trial day can still be handed over.
//
// A buyer may note a defect up front; the note is kept on the return but
// the dispute path only opens if the seller claims a defect at the scan.
func (uc *Usecase) InitiateReturn(orderID, buyerID, buyerNote string) (*domain.Return, error) {
	var created *domain.Return

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		order, err := uc.orders.GetByIDForUpdate(tx, orderID)
		if err != nil {
			return err
		}
		if order.BuyerID != buyerID {
			return domain.ErrForbidden
		}
		if order.Status != domain.OrderTrialActive {
			return domain.ErrInvalidTransition
		}
		if order.TrialEndsAt == nil || time.Now().After(*order.TrialEndsAt) {
			return domain.ErrTrialExpired
		}

		exists, err := uc.returns.ExistsForOrder(tx, order.ID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrReturnExists
		}

		now := time.Now()
		created = &domain.Return{
			ID:                uuid.NewString(),
			OrderID:           order.ID,
			ReturnToken:       uc.newToken(),
			Status:            domain.ReturnPending,
			RequestedAt:       now,
			ExpiresAt:         order.TrialEndsAt.Add(domain.ReturnGracePeriod),
			DefectDescription: buyerNote,
		}
		if err := uc.returns.Create(tx, created); err != nil {
			return err
		}
		return uc.orders.UpdateStatus(tx, order.ID, domain.OrderReturnRequested)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ReturnsInitiatedTotal.Inc()
	}
	return created, nil
}
