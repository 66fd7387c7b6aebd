package escrow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sewasew/escrow-service/internal/domain"
	"gorm.io/gorm"
)

type InitiateResult struct {
	CheckoutURL string
	TxRef       string
	HasTrial    bool
}

// Initiate opens a hosted-checkout session for the order. The payment row,
// the seller provisioning and the gateway call all run inside one
// transaction: a failed gateway call rolls everything back so no orphan
// pending payment survives.
func (uc *Usecase) Initiate(ctx context.Context, orderID string) (*InitiateResult, error) {
	var result InitiateResult

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		order, err := uc.orders.GetByIDForUpdate(tx, orderID)
		if err != nil {
			return err
		}
		if !order.Payable() {
			return domain.ErrOrderNotPayable
		}

		product, err := uc.products.GetByID(order.ProductID)
		if err != nil {
			return err
		}

		policy, err := uc.policyFor(product.ID)
		if err != nil {
			return err
		}
		hasTrial := domain.HasTrial(policy)

		// Direct sales split the principal with the seller at collection
		// time; trial sales are collected whole and held by the platform.
		var split *domain.CheckoutSplit
		if !hasTrial {
			subaccountID, err := uc.resolveSellerSubaccount(ctx, tx, product.OwnerID)
			if err != nil {
				return err
			}
			split = &domain.CheckoutSplit{
				SubaccountID: subaccountID,
				SplitType:    "percentage",
				SplitValue:   uc.commission,
			}
		}

		buyer, err := uc.users.GetByID(order.BuyerID)
		if err != nil {
			return err
		}

		// Supersede any still-pending attempt so the order keeps at most
		// one non-terminal payment.
		if err := uc.payments.FailPendingByOrderID(tx, order.ID); err != nil {
			return err
		}

		payment := &domain.Payment{
			ID:       uuid.NewString(),
			OrderID:  order.ID,
			TxRef:    fmt.Sprintf("TX-%s", uuid.NewString()),
			Amount:   order.TotalPrice,
			Currency: uc.currency,
			Status:   domain.PaymentPending,
		}
		if err := uc.payments.Create(tx, payment); err != nil {
			return err
		}

		start := time.Now()
		checkoutURL, err := uc.gateway.Initialize(ctx, domain.CheckoutRequest{
			TxRef:     payment.TxRef,
			Amount:    order.TotalPrice,
			Currency:  uc.currency,
			Email:     buyer.Email,
			FirstName: buyer.FirstName,
			LastName:  buyer.LastName,
			Phone:     buyer.Phone,
			Split:     split,
		})
		uc.observeGateway("initialize", start)
		if err != nil {
			return err
		}

		result = InitiateResult{
			CheckoutURL: checkoutURL,
			TxRef:       payment.TxRef,
			HasTrial:    hasTrial,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsInitiatedTotal.WithLabelValues(saleKind(result.HasTrial)).Inc()
	}
	return &result, nil
}

// resolveSellerSubaccount returns the seller's gateway payout destination,
// provisioning one on first use.
func (uc *Usecase) resolveSellerSubaccount(ctx context.Context, tx *gorm.DB, sellerID string) (string, error) {
	seller, err := uc.users.GetByID(sellerID)
	if err != nil {
		return "", domain.ErrSellerNotConfigured
	}
	if seller.GatewaySubaccountID != "" {
		return seller.GatewaySubaccountID, nil
	}

	start := time.Now()
	subaccountID, err := uc.gateway.CreateSubaccount(ctx, domain.SubaccountRequest{
		BusinessName:  fmt.Sprintf("%s %s", seller.FirstName, seller.LastName),
		AccountName:   seller.FirstName,
		AccountNumber: seller.Phone,
		BankCode:      uc.sellerBankCode,
		SplitValue:    uc.commission,
	})
	uc.observeGateway("create_subaccount", start)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSellerNotConfigured, err)
	}

	if err := uc.users.SetGatewaySubaccount(tx, sellerID, subaccountID); err != nil {
		return "", err
	}
	return subaccountID, nil
}

func (uc *Usecase) observeGateway(call string, start time.Time) {
	if uc.metrics != nil {
		uc.metrics.GatewayCallDuration.WithLabelValues(call).Observe(time.Since(start).Seconds())
	}
}

func saleKind(hasTrial bool) string {
	if hasTrial {
		return "trial"
	}
	return "direct"
}
