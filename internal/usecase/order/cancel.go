package order

import (
	"github.com/sewasew/escrow-service/internal/domain"
	"gorm.io/gorm"
)

// Cancel aborts an order from pending or trial_active. Cancelling an active
// trial is the buyer renouncing the purchase early: the escrowed funds go
// back to the buyer and the unit is freed, exactly as a confirmed return
// would, before the order is marked cancelled.
func (uc *Usecase) Cancel(orderID, buyerID string) (*domain.Order, error) {
	var cancelled *domain.Order

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		order, err := uc.orders.GetByIDForUpdate(tx, orderID)
		if err != nil {
			return err
		}
		if order.BuyerID != buyerID {
			return domain.ErrForbidden
		}
		if !order.Cancellable() {
			return domain.ErrInvalidTransition
		}

		if order.Status == domain.OrderTrialActive {
			if _, err := uc.escrow.Settle(tx, order, domain.PartyBuyer, "order_cancelled"); err != nil {
				return err
			}
		} else {
			// A pending attempt may still reference the order; terminate it
			// so the stale checkout can never settle.
			if err := uc.escrow.FailPendingPayments(tx, order.ID); err != nil {
				return err
			}
		}

		order.Status = domain.OrderCancelled
		if err := uc.orders.UpdateStatus(tx, order.ID, domain.OrderCancelled); err != nil {
			return err
		}
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}
