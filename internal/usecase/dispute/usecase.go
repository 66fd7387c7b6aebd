package dispute

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/kafka"
	"github.com/sewasew/escrow-service/internal/infrastructure/metrics"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/sewasew/escrow-service/internal/usecase/escrow"
	"gorm.io/gorm"
)

// Usecase drives admin arbitration of defect disputes. A resolution is the
// only path out of the disputed state and always names exactly one winner.
type Usecase struct {
	db       *gorm.DB
	disputes repository.DisputeRepository
	orders   repository.OrderRepository
	escrow   *escrow.Usecase
	events   *kafka.Publisher
	metrics  *metrics.EscrowMetrics
}

func NewUsecase(
	db *gorm.DB,
	disputes repository.DisputeRepository,
	orders repository.OrderRepository,
	escrowUc *escrow.Usecase,
	events *kafka.Publisher,
	escrowMetrics *metrics.EscrowMetrics,
) *Usecase {
	return &Usecase{
		db:       db,
		disputes: disputes,
		orders:   orders,
		escrow:   escrowUc,
		events:   events,
		metrics:  escrowMetrics,
	}
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
		Resolution:  dispute.Resolution,
		OccurredAt:  time.Now(),
	})
}
