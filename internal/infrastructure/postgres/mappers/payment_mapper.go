package mappers

import (
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:        model.ID,
		OrderID:   model.OrderID,
		TxRef:     model.TxRef,
		Amount:    model.Amount,
		Currency:  model.Currency,
		Status:    model.Status,
		PaidAt:    model.PaidAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:        payment.ID,
		OrderID:   payment.OrderID,
		TxRef:     payment.TxRef,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Status:    payment.Status,
		PaidAt:    payment.PaidAt,
		CreatedAt: payment.CreatedAt,
		UpdatedAt: payment.UpdatedAt,
	}
}
