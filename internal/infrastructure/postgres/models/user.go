package models

import "time"

type UserModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Email               string `gorm:"uniqueIndex;not null"`
	FirstName           string
	LastName            string
	Phone               string
	Role                string `gorm:"index"`
	GatewaySubaccountID string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (UserModel) TableName() string {
	return "users"
}
