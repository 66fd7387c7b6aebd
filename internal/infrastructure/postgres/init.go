package postgres

import (
	"log"

	"github.com/sewasew/escrow-service/internal/config"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.EscrowConfig) *gorm.DB {
	dsn := cfg.EscrowDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.ProductModel{},
		&models.TrialPolicyModel{},
		&models.OrderModel{},
		&models.PaymentModel{},
		&models.ReturnModel{},
		&models.DisputeModel{},
	); err != nil {
		log.Fatalf("failed to run automigrations: %v\n", err.Error())
	}

	return db
}
