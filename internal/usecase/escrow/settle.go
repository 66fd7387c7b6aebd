package escrow

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/kafka"
	"gorm.io/gorm"
)

// Settle releases the order's held (or disputed) payment to the given party
// inside the caller's transaction. It is the single place escrowed money
// leaves escrow: confirmed returns, dispute resolutions, buyer cancellation
// during trial, and the reconciliation sweeps all come through here.
//
// Release to the buyer frees the product unit; release to the seller keeps
// it committed. Either way the trial is over, so the policy's active flag
// drops.
func (uc *Usecase) Settle(tx *gorm.DB, order *domain.Order, to domain.Party, trigger string) (*domain.Payment, error) {
	payment, err := uc.payments.GetHeldByOrderIDForUpdate(tx, order.ID)
	if err != nil {
		return nil, err
	}

	product, err := uc.products.GetByIDForUpdate(tx, order.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.CompletedAt = &now

	if to == domain.PartyBuyer {
		payment.Status = domain.PaymentReleasedToBuyer
		order.Status = domain.OrderReturned
		order.MoneyReleasedTo = order.BuyerID
		if err := uc.products.SetAvailability(tx, product.ID, true); err != nil {
			return nil, err
		}
	} else {
		payment.Status = domain.PaymentReleasedToSeller
		order.Status = domain.OrderPaid
		order.MoneyReleasedTo = product.OwnerID
	}

	if err := uc.policies.SetActive(tx, order.ProductID, false); err != nil {
		return nil, err
	}
	if err := uc.payments.Update(tx, payment); err != nil {
		return nil, err
	}
	if err := uc.orders.Update(tx, order); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SettlementsTotal.WithLabelValues(string(to), trigger).Inc()
	}
	uc.publishSettlement(order, payment)
	return payment, nil
}

// FailPendingPayments terminates every pending attempt of the order so a
// stale checkout session can never settle it.
func (uc *Usecase) FailPendingPayments(tx *gorm.DB, orderID string) error {
	return uc.payments.FailPendingByOrderID(tx, orderID)
}

// MarkDisputed parks the order's escrowed payment pending arbitration.
func (uc *Usecase) MarkDisputed(tx *gorm.DB, orderID string) (*domain.Payment, error) {
	payment, err := uc.payments.GetHeldByOrderIDForUpdate(tx, orderID)
	if err != nil {
		return nil, err
	}
	payment.Status = domain.PaymentDisputed
	if err := uc.payments.Update(tx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (uc *Usecase) publishSettlement(order *domain.Order, payment *domain.Payment) {
	if uc.events == nil {
		return
	}
	uc.events.PublishSettlement(kafka.SettlementEvent{
		OrderID:       order.ID,
		PaymentID:     payment.ID,
		TxRef:         payment.TxRef,
		Amount:        payment.Amount.String(),
		Currency:      payment.Currency,
		PaymentStatus: string(payment.Status),
		OrderStatus:   string(order.Status),
		ReleasedTo:    order.MoneyReleasedTo,
		OccurredAt:    time.Now(),
	})
}
