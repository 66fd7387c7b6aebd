package returns

import (
	"github.com/sewasew/escrow-service/internal/domain"
)

// GetByOrderID fetches the order's return for its buyer or an admin.
func (uc *Usecase) GetByOrderID(orderID, requesterID, requesterRole string) (*domain.Return, error) {
	ret, err := uc.returns.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if requesterRole != "admin" {
		order, err := uc.orders.GetByID(orderID)
		if err != nil {
			return nil, err
		}
		if order.BuyerID != requesterID {
			return nil, domain.ErrForbidden
		}
	}
	return ret, nil
}

func (uc *Usecase) ListBySeller(sellerID string, status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error) {
	return uc.returns.ListBySeller(sellerID, status, page, limit)
}

func (uc *Usecase) ListByBuyer(buyerID string, status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error) {
	return uc.returns.ListByBuyer(buyerID, status, page, limit)
}
