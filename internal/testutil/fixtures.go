// Package testutil holds shared fixtures for usecase tests: an in-memory
// database with the full schema and an in-process fake of the payment
// gateway.
package testutil

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A per-test file database instead of ":memory:": the usecases issue
	// pool-backed reads while a transaction holds another connection, so a
	// single-connection in-memory database would deadlock.
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
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
		t.Fatalf("migrate schema: %v", err)
	}
	return db
}

func SeedUser(t *testing.T, db *gorm.DB, role string) string {
	t.Helper()
	id := uuid.NewString()
	user := models.UserModel{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		Phone:     "0911223344",
		Role:      role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func SeedProduct(t *testing.T, db *gorm.DB, ownerID string, price string) string {
	t.Helper()
	id := uuid.NewString()
	product := models.ProductModel{
		ID:          id,
		OwnerID:     ownerID,
		Name:        "Leather Jacket",
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return id
}

func SeedTrialPolicy(t *testing.T, db *gorm.DB, productID string, trialDays int) string {
	t.Helper()
	id := uuid.NewString()
	policy := models.TrialPolicyModel{
		ID:                id,
		ProductID:         productID,
		TrialDays:         trialDays,
		ReturnWindowHours: 24,
	}
	if err := db.Create(&policy).Error; err != nil {
		t.Fatalf("seed trial policy: %v", err)
	}
	return id
}

// FakeGateway implements the payment gateway port with programmable
// verdicts and records every call it receives.
type FakeGateway struct {
	mu sync.Mutex

	VerifyResult domain.VerifyStatus
	VerifyErr    error
	InitErr      error

	InitRequests       []domain.CheckoutRequest
	SubaccountRequests []domain.SubaccountRequest
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{VerifyResult: domain.VerifySuccess}
}

func (g *FakeGateway) Initialize(_ context.Context, req domain.CheckoutRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.InitErr != nil {
		return "", g.InitErr
	}
	g.InitRequests = append(g.InitRequests, req)
	return "https://checkout.example.com/" + req.TxRef, nil
}

func (g *FakeGateway) Verify(_ context.Context, _ string) (domain.VerifyStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.VerifyErr != nil {
		return "", g.VerifyErr
	}
	return g.VerifyResult, nil
}

func (g *FakeGateway) CreateSubaccount(_ context.Context, req domain.SubaccountRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.SubaccountRequests = append(g.SubaccountRequests, req)
	return "SUB-" + uuid.NewString(), nil
}

func (g *FakeGateway) LastInit(t *testing.T) domain.CheckoutRequest {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.InitRequests) == 0 {
		t.Fatal("gateway received no initialize calls")
	}
	return g.InitRequests[len(g.InitRequests)-1]
}
