package dispute

import "github.com/sewasew/escrow-service/internal/domain"

func (uc *Usecase) GetByID(disputeID string) (*domain.Dispute, error) {
	return uc.disputes.GetByID(disputeID)
}

func (uc *Usecase) GetByOrderID(orderID string) (*domain.Dispute, error) {
	return uc.disputes.GetByOrderID(orderID)
}

func (uc *Usecase) List(status domain.DisputeStatus, page, limit int) ([]*domain.Dispute, int64, error) {
	return uc.disputes.List(status, page, limit)
}
