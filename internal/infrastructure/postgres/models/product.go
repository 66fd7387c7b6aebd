package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	OwnerID     string          `gorm:"type:uuid;index;not null"`
	Name        string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsAvailable bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
