package returns

import (
	"log"

	"github.com/jaevor/go-nanoid"
	"github.com/sewasew/escrow-service/internal/infrastructure/kafka"
	"github.com/sewasew/escrow-service/internal/infrastructure/metrics"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/sewasew/escrow-service/internal/usecase/escrow"
	"gorm.io/gorm"
)

// Usecase handles buyer-initiated returns and the seller's in-person
// inspection via single-use tokens.
type Usecase struct {
	db       *gorm.DB
	returns  repository.ReturnRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
	disputes repository.DisputeRepository
	escrow   *escrow.Usecase
	events   *kafka.Publisher
	metrics  *metrics.EscrowMetrics

	newToken func() string
}

func NewUsecase(
	db *gorm.DB,
	returnsRepo repository.ReturnRepository,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	disputes repository.DisputeRepository,
	escrowUc *escrow.Usecase,
	events *kafka.Publisher,
	escrowMetrics *metrics.EscrowMetrics,
) *Usecase {
	tokenGenerator, err := nanoid.Standard(12)
	if err != nil {
		log.Fatalf("failed to init return token generator: %v", err)
	}
	return &Usecase{
		db:       db,
		returns:  returnsRepo,
		orders:   orders,
		products: products,
		disputes: disputes,
		escrow:   escrowUc,
		events:   events,
		metrics:  escrowMetrics,
		newToken: func() string { return "RT-" + tokenGenerator() },
	}
}
