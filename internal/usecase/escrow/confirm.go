package escrow

import (
	"context"
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"gorm.io/gorm"
)

type ConfirmResult struct {
	Order   *domain.Order
	Payment *domain.Payment
}

// Confirm applies the gateway's verdict for txRef. It is invoked by the
// gateway's asynchronous callback, which may be delivered more than once:
// the locked re-read of the payment row is the sole defense against
// duplicate or replayed callbacks, so it runs first, in the same
// transaction as the gateway-side verification.
func (uc *Usecase) Confirm(ctx context.Context, txRef string) (*ConfirmResult, error) {
	var result ConfirmResult

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		payment, err := uc.payments.GetByTxRefForUpdate(tx, txRef)
		if err != nil {
			return err
		}
		if payment.Status != domain.PaymentPending {
			return domain.ErrAlreadyProcessed
		}

		start := time.Now()
		verdict, err := uc.gateway.Verify(ctx, txRef)
		uc.observeGateway("verify", start)
		if err != nil {
			return err
		}

		order, err := uc.orders.GetByIDForUpdate(tx, payment.OrderID)
		if err != nil {
			return err
		}

		switch verdict {
		case domain.VerifySuccess:
			if err := uc.applySuccess(tx, order, payment); err != nil {
				return err
			}
		case domain.VerifyFailed:
			// The order stays payable for a retry with a fresh txRef.
			payment.Status = domain.PaymentFailed
			if err := uc.payments.Update(tx, payment); err != nil {
				return err
			}
		case domain.VerifyPending:
			// Not final yet; leave the payment pending so a later
			// callback can still settle it.
		}

		result = ConfirmResult{Order: order, Payment: payment}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recordConfirm(&result)
	return &result, nil
}

// applySuccess routes a confirmed collection: escrow hold for trial sales,
// direct release for the rest. Both branches commit the product unit to the
// buyer.
func (uc *Usecase) applySuccess(tx *gorm.DB, order *domain.Order, payment *domain.Payment) error {
	product, err := uc.products.GetByIDForUpdate(tx, order.ProductID)
	if err != nil {
		return err
	}

	policy, err := uc.policyFor(order.ProductID)
	if err != nil {
		return err
	}

	now := time.Now()
	payment.PaidAt = &now

	if domain.HasTrial(policy) {
		payment.Status = domain.PaymentHeldInEscrow
		order.Status = domain.OrderTrialActive
		order.TrialStartedAt = &now
		trialEndsAt := policy.TrialEnd(now)
		order.TrialEndsAt = &trialEndsAt
		if err := uc.policies.SetActive(tx, order.ProductID, true); err != nil {
			return err
		}
	} else {
		payment.Status = domain.PaymentReleasedToSeller
		order.Status = domain.OrderPaid
		order.CompletedAt = &now
		order.MoneyReleasedTo = product.OwnerID
	}

	if err := uc.products.SetAvailability(tx, product.ID, false); err != nil {
		return err
	}
	if err := uc.payments.Update(tx, payment); err != nil {
		return err
	}
	return uc.orders.Update(tx, order)
}

func (uc *Usecase) recordConfirm(result *ConfirmResult) {
	if uc.metrics != nil {
		uc.metrics.PaymentsConfirmedTotal.WithLabelValues(string(result.Payment.Status)).Inc()
	}
	if uc.events != nil && result.Payment.Status != domain.PaymentPending {
		uc.publishSettlement(result.Order, result.Payment)
	}
}
