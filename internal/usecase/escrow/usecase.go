package escrow

import (
	"errors"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/kafka"
	"github.com/sewasew/escrow-service/internal/infrastructure/metrics"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase is the escrow payment coordinator. It owns every payment-derived
// state transition: checkout initiation, gateway confirmation, and the
// terminal release of held funds to either party.
type Usecase struct {
	db       *gorm.DB
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	products repository.ProductRepository
	policies repository.TrialPolicyRepository
	users    repository.UserRepository
	gateway  domain.PaymentGateway
	events   *kafka.Publisher
	metrics  *metrics.EscrowMetrics

	currency       string
	commission     decimal.Decimal
	sellerBankCode string
}

type Config struct {
	Currency       string
	Commission     decimal.Decimal
	SellerBankCode string
}

func NewUsecase(
	db *gorm.DB,
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	products repository.ProductRepository,
	policies repository.TrialPolicyRepository,
	users repository.UserRepository,
	gateway domain.PaymentGateway,
	events *kafka.Publisher,
	escrowMetrics *metrics.EscrowMetrics,
	cfg Config,
) *Usecase {
	return &Usecase{
		db:             db,
		orders:         orders,
		payments:       payments,
		products:       products,
		policies:       policies,
		users:          users,
		gateway:        gateway,
		events:         events,
		metrics:        escrowMetrics,
		currency:       cfg.Currency,
		commission:     cfg.Commission,
		sellerBankCode: cfg.SellerBankCode,
	}
}

// policyFor loads the product's trial policy, mapping absence to nil so the
// evaluator can route on existence.
func (uc *Usecase) policyFor(productID string) (*domain.TrialPolicy, error) {
	policy, err := uc.policies.GetByProductID(productID)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return policy, nil
}
