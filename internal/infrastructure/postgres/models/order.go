package models

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID              string             `gorm:"primaryKey;type:uuid"`
	BuyerID         string             `gorm:"type:uuid;index;not null"`
	ProductID       string             `gorm:"type:uuid;index;not null"`
	Product         ProductModel       `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	TotalPrice      decimal.Decimal    `gorm:"type:decimal(12,2);not null"`
	Status          domain.OrderStatus `gorm:"index:idx_order_status;not null"`
	TrialStartedAt  *time.Time
	TrialEndsAt     *time.Time `gorm:"index:idx_order_trial_ends"`
	CompletedAt     *time.Time
	MoneyReleasedTo string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
