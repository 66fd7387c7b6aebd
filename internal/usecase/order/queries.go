package order

import "github.com/sewasew/escrow-service/internal/domain"

func (uc *Usecase) GetByID(orderID string) (*domain.Order, error) {
	return uc.orders.GetByID(orderID)
}

func (uc *Usecase) ListByBuyer(buyerID string, page, limit int) ([]*domain.Order, int64, error) {
	return uc.orders.ListByBuyer(buyerID, page, limit)
}
