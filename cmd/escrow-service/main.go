package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/sewasew/escrow-service/internal/app/background"
	"github.com/sewasew/escrow-service/internal/config"
	httpdelivery "github.com/sewasew/escrow-service/internal/delivery/http"
	"github.com/sewasew/escrow-service/internal/infrastructure/chapa"
	"github.com/sewasew/escrow-service/internal/infrastructure/kafka"
	"github.com/sewasew/escrow-service/internal/infrastructure/metrics"
	"github.com/sewasew/escrow-service/internal/infrastructure/migrate"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/sewasew/escrow-service/internal/usecase/dispute"
	"github.com/sewasew/escrow-service/internal/usecase/escrow"
	"github.com/sewasew/escrow-service/internal/usecase/order"
	"github.com/sewasew/escrow-service/internal/usecase/returns"
	"github.com/sewasew/escrow-service/internal/usecase/trialpolicy"
	"github.com/shopspring/decimal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)
	if cfg.EscrowDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.EscrowDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	policyRepo := repository.NewDefaultTrialPolicyRepository(db)
	returnRepo := repository.NewDefaultReturnRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)

	gateway := chapa.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.SecretKey, cfg.Gateway.CallbackURL)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	events := kafka.NewPublisher(brokers, cfg.Kafka.SettlementTopic, cfg.Kafka.DisputeTopic)
	defer events.Close()

	escrowMetrics := metrics.NewEscrowMetrics()

	commission, err := decimal.NewFromString(cfg.Gateway.CommissionPercent)
	if err != nil {
		log.Fatalf("invalid commission_percent: %v", err)
	}

	escrowUc := escrow.NewUsecase(
		db, orderRepo, paymentRepo, productRepo, policyRepo, userRepo,
		gateway, events, escrowMetrics,
		escrow.Config{
			Currency:       cfg.Gateway.Currency,
			Commission:     commission,
			SellerBankCode: cfg.Gateway.SellerBankCode,
		},
	)
	orderUc := order.NewUsecase(db, orderRepo, productRepo, policyRepo, escrowUc)
	returnsUc := returns.NewUsecase(db, returnRepo, orderRepo, productRepo, disputeRepo, escrowUc, events, escrowMetrics)
	disputeUc := dispute.NewUsecase(db, disputeRepo, orderRepo, escrowUc, events, escrowMetrics)
	policyUc := trialpolicy.NewUsecase(db, policyRepo, productRepo)

	tasks := background.NewBackgroundTasks(escrowUc, returnsUc, cfg.Background.SweepInterval)
	tasks.StartAll(context.Background())

	server := httpdelivery.NewServer(orderUc, escrowUc, returnsUc, disputeUc, policyUc, cfg.Auth.JWTSecret)

	address := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("escrow service listening on %s", address)
	if err := server.Start(address); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
