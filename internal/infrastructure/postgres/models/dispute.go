package models

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
)

type DisputeModel struct {
	ID          string               `gorm:"primaryKey;type:uuid"`
	OrderID     string               `gorm:"type:uuid;index;not null"`
	Order       OrderModel           `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ReturnID    string               `gorm:"type:uuid;index;not null"`
	Return      ReturnModel          `gorm:"foreignKey:ReturnID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	InitiatedBy string               `gorm:"type:uuid;not null"`
	Reason      string               `gorm:"type:text;not null"`
	Status      domain.DisputeStatus `gorm:"index;not null"`
	Resolution  string               `gorm:"type:text"`
	ResolvedBy  string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DisputeModel) TableName() string {
	return "disputes"
}
