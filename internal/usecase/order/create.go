package order

import (
	"github.com/google/uuid"
	"github.com/sewasew/escrow-service/internal/domain"
	"gorm.io/gorm"
)

type CreateResult struct {
	Order    *domain.Order
	HasTrial bool
}

// Create records a buyer's commitment to purchase one unit. The price is
// read once and frozen on the order; availability only changes later, on
// payment success. The trial policy evaluator supplies the sale-kind hint,
// but every order starts pending: a trial activates at settlement, not at
// creation.
func (uc *Usecase) Create(buyerID, productID string) (*CreateResult, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable {
		return nil, domain.ErrProductUnavailable
	}

	hasTrial, err := uc.hasTrial(productID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:         uuid.NewString(),
		BuyerID:    buyerID,
		ProductID:  productID,
		TotalPrice: product.Price,
		Status:     domain.OrderPending,
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		return uc.orders.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	return &CreateResult{Order: order, HasTrial: hasTrial}, nil
}
