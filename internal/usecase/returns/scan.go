package returns

import (
	"time"

	"github.com/google/uuid"
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/kafka"
	"gorm.io/gorm"
)

type ScanResult struct {
	Return  *domain.Return
	Dispute *domain.Dispute
}

// AcceptByScan consumes a return token at in-person inspection. The locked
// token read guarantees a token settles at most once: of two concurrent
// scans only one observes status pending, the other gets ErrAlreadyProcessed.
//
// Confirming releases the escrowed funds to the buyer and frees the unit.
// Claiming a defect freezes the money and opens a dispute instead; the unit
// stays committed until an admin rules.
func (uc *Usecase) AcceptByScan(sellerID, token string, action domain.ScanAction, photoURL, description string) (*ScanResult, error) {
	result := &ScanResult{}

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		ret, err := uc.returns.GetByTokenForUpdate(tx, token)
		if err != nil {
			return err
		}

		order, err := uc.orders.GetByIDForUpdate(tx, ret.OrderID)
		if err != nil {
			return err
		}
		product, err := uc.products.GetByID(order.ProductID)
		if err != nil {
			return err
		}
		if product.OwnerID != sellerID {
			return domain.ErrForbidden
		}

		if ret.Status != domain.ReturnPending {
			return domain.ErrAlreadyProcessed
		}
		if time.Now().After(ret.ExpiresAt) {
			return domain.ErrReturnExpired
		}

		switch action {
		case domain.ScanConfirm:
			return uc.confirmReturn(tx, ret, order, result)
		case domain.ScanClaimDefect:
			return uc.claimDefect(tx, ret, order, sellerID, photoURL, description, result)
		default:
			return domain.ErrValidation
		}
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ReturnsScannedTotal.WithLabelValues(string(action)).Inc()
	}
	if result.Dispute != nil {
		if uc.metrics != nil {
			uc.metrics.DisputesOpenedTotal.Inc()
		}
		uc.publishDispute(result.Dispute)
	}
	return result, nil
}

func (uc *Usecase) confirmReturn(tx *gorm.DB, ret *domain.Return, order *domain.Order, result *ScanResult) error {
	now := time.Now()
	ret.Status = domain.ReturnConfirmed
	ret.ScannedAt = &now
	if err := uc.returns.Update(tx, ret); err != nil {
		return err
	}
	if _, err := uc.escrow.Settle(tx, order, domain.PartyBuyer, "return_confirmed"); err != nil {
		return err
	}
	result.Return = ret
	return nil
}

func (uc *Usecase) claimDefect(tx *gorm.DB, ret *domain.Return, order *domain.Order, sellerID, photoURL, description string, result *ScanResult) error {
	if photoURL == "" || description == "" {
		return domain.ErrValidation
	}

	handled, err := uc.disputes.HasHandledForReturn(tx, ret.ID)
	if err != nil {
		return err
	}
	if handled {
		return domain.ErrDisputeExists
	}

	now := time.Now()
	ret.Status = domain.ReturnDefectClaimed
	ret.ScannedAt = &now
	ret.DefectPhotoURL = photoURL
	ret.DefectDescription = description
	if err := uc.returns.Update(tx, ret); err != nil {
		return err
	}

	if _, err := uc.escrow.MarkDisputed(tx, order.ID); err != nil {
		return err
	}
	if err := uc.orders.UpdateStatus(tx, order.ID, domain.OrderDisputed); err != nil {
		return err
	}

	dispute := &domain.Dispute{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		ReturnID:    ret.ID,
		InitiatedBy: sellerID,
		Reason:      description,
		Status:      domain.DisputeOpen,
	}
	if err := uc.disputes.Create(tx, dispute); err != nil {
		return err
	}

	result.Return = ret
	result.Dispute = dispute
	return nil
}

func (uc *Usecase) publishDispute(dispute *domain.Dispute) {
	if uc.events == nil {
		return
	}
	uc.events.PublishDispute(kafka.DisputeEvent{
		DisputeID:   dispute.ID,
		OrderID:     dispute.OrderID,
		ReturnID:    dispute.ReturnID,
		InitiatedBy: dispute.InitiatedBy,
		Reason:      dispute.Reason,
		Status:      string(dispute.Status),
		OccurredAt:  time.Now(),
	})
}
