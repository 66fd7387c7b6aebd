package models

import (
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
)

type ReturnModel struct {
	ID                string              `gorm:"primaryKey;type:uuid"`
	OrderID           string              `gorm:"type:uuid;uniqueIndex;not null"`
	Order             OrderModel          `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ReturnToken       string              `gorm:"uniqueIndex;not null"`
	Status            domain.ReturnStatus `gorm:"index;not null"`
	RequestedAt       time.Time           `gorm:"not null"`
	ExpiresAt         time.Time           `gorm:"index;not null"`
	ScannedAt         *time.Time
	DefectPhotoURL    string
	DefectDescription string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ReturnModel) TableName() string {
	return "returns"
}
