package escrow

import "github.com/sewasew/escrow-service/internal/domain"

// Status is the polling fallback for clients that cannot receive the
// gateway callback.
func (uc *Usecase) Status(txRef string) (*domain.Payment, *domain.Order, error) {
	payment, err := uc.payments.GetByTxRef(txRef)
	if err != nil {
		return nil, nil, err
	}
	order, err := uc.orders.GetByID(payment.OrderID)
	if err != nil {
		return nil, nil, err
	}
	return payment, order, nil
}
