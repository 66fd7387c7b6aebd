package order

import (
	"errors"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/sewasew/escrow-service/internal/usecase/escrow"
	"gorm.io/gorm"
)

// Usecase is the order ledger: it owns order creation and buyer
// cancellation. Payment-derived transitions belong to the escrow
// coordinator.
type Usecase struct {
	db       *gorm.DB
	orders   repository.OrderRepository
	products repository.ProductRepository
	policies repository.TrialPolicyRepository
	escrow   *escrow.Usecase
}

func NewUsecase(
	db *gorm.DB,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	policies repository.TrialPolicyRepository,
	escrowUc *escrow.Usecase,
) *Usecase {
	return &Usecase{
		db:       db,
		orders:   orders,
		products: products,
		policies: policies,
		escrow:   escrowUc,
	}
}

func (uc *Usecase) hasTrial(productID string) (bool, error) {
	policy, err := uc.policies.GetByProductID(productID)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			return false, nil
		}
		return false, err
	}
	return domain.HasTrial(policy), nil
}
