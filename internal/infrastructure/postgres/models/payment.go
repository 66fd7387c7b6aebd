package models

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/shopspring/decimal"
)

type PaymentModel struct {
	ID        string               `gorm:"primaryKey;type:uuid"`
	OrderID   string               `gorm:"type:uuid;index;not null"`
	Order     OrderModel           `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	TxRef     string               `gorm:"uniqueIndex;not null"`
	Amount    decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
	Currency  string               `gorm:"size:3;not null"`
	Status    domain.PaymentStatus `gorm:"index;not null"`
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
