package models

import (
	"time"
)

type TrialPolicyModel struct {
	ID                string       `gorm:"primaryKey;type:uuid"`
	ProductID         string       `gorm:"type:uuid;uniqueIndex;not null"`
	Product           ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	TrialDays         int          `gorm:"not null"`
	ReturnWindowHours int          `gorm:"not null"`
	Active            bool         `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (TrialPolicyModel) TableName() string {
	return "trial_policies"
}
