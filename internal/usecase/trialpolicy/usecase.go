package trialpolicy

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

// Usecase manages per-product trial policies. Creating a policy is what
// turns a product into a trial sale; deleting it reverts the product to
// direct sales. Numeric fields freeze while a trial is outstanding so a
// running trial's deadline cannot be moved under the buyer.
type Usecase struct {
	db       *gorm.DB
	policies repository.TrialPolicyRepository
	products repository.ProductRepository
}

func NewUsecase(db *gorm.DB, policies repository.TrialPolicyRepository, products repository.ProductRepository) *Usecase {
	return &Usecase{db: db, policies: policies, products: products}
}

type PolicyInput struct {
	TrialDays         int
	ReturnWindowHours int
}

func (in PolicyInput) validate() error {
	if in.TrialDays <= 0 || in.ReturnWindowHours < 0 {
		return domain.ErrValidation
	}
	return nil
}

func (uc *Usecase) Create(productID, sellerID string, in PolicyInput) (*domain.TrialPolicy, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var created *domain.TrialPolicy
	err := uc.db.Transaction(func(tx *gorm.DB) error {
		product, err := uc.products.GetByIDForUpdate(tx, productID)
		if err != nil {
			return err
		}
		if product.OwnerID != sellerID {
			return domain.ErrForbidden
		}

		if _, err := uc.policies.GetByProductIDForUpdate(tx, productID); err == nil {
			return domain.ErrPolicyExists
		} else if !errors.Is(err, domain.ErrPolicyNotFound) {
			return err
		}

		created = &domain.TrialPolicy{
			ID:                uuid.NewString(),
			ProductID:         productID,
			TrialDays:         in.TrialDays,
			ReturnWindowHours: in.ReturnWindowHours,
			Active:            false,
		}
		return uc.policies.Create(tx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *Usecase) Update(productID, sellerID string, in PolicyInput) (*domain.TrialPolicy, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated *domain.TrialPolicy
	err := uc.db.Transaction(func(tx *gorm.DB) error {
		if err := uc.authorize(tx, productID, sellerID); err != nil {
			return err
		}
		policy, err := uc.policies.GetByProductIDForUpdate(tx, productID)
		if err != nil {
			return err
		}
		if policy.Active {
			return domain.ErrPolicyLocked
		}

		policy.TrialDays = in.TrialDays
		policy.ReturnWindowHours = in.ReturnWindowHours
		if err := uc.policies.Update(tx, policy); err != nil {
			return err
		}
		updated = policy
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the policy so future orders sell direct. A policy with a
// trial outstanding stays until that trial settles.
func (uc *Usecase) Delete(productID, sellerID string) error {
	return uc.db.Transaction(func(tx *gorm.DB) error {
		if err := uc.authorize(tx, productID, sellerID); err != nil {
			return err
		}
		policy, err := uc.policies.GetByProductIDForUpdate(tx, productID)
		if err != nil {
			return err
		}
		if policy.Active {
			return domain.ErrPolicyLocked
		}
		return uc.policies.Delete(tx, productID)
	})
}

func (uc *Usecase) Get(productID string) (*domain.TrialPolicy, error) {
	return uc.policies.GetByProductID(productID)
}

func (uc *Usecase) authorize(tx *gorm.DB, productID, sellerID string) error {
	product, err := uc.products.GetByIDForUpdate(tx, productID)
	if err != nil {
		return err
	}
	if product.OwnerID != sellerID {
		return domain.ErrForbidden
	}
	return nil
}
