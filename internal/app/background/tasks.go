package background

import (
	"context"
	"log"
	"time"

	"github.com/sewasew/escrow-service/internal/usecase/escrow"
	"github.com/sewasew/escrow-service/internal/usecase/returns"
)

// BackgroundTasks runs the reconciliation sweeps: trial windows that
// elapsed without a return, and return windows that elapsed without a scan.
type BackgroundTasks struct {
	EscrowUsecase  *escrow.Usecase
	ReturnsUsecase *returns.Usecase
	SweepInterval  time.Duration
}

func NewBackgroundTasks(escrowUC *escrow.Usecase, returnsUC *returns.Usecase, sweepInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		EscrowUsecase:  escrowUC,
		ReturnsUsecase: returnsUC,
		SweepInterval:  sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startTrialExpirySweep(ctx)
	go bt.startReturnExpirySweep(ctx)
}

func (bt *BackgroundTasks) startTrialExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.EscrowUsecase.SettleExpiredTrials(ctx); err != nil {
				log.Printf("Trial expiry sweep error: %v\n", err)
			}
		}
	}
}

func (bt *BackgroundTasks) startReturnExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.ReturnsUsecase.ExpireReturns(ctx); err != nil {
				log.Printf("Return expiry sweep error: %v\n", err)
			}
		}
	}
}
