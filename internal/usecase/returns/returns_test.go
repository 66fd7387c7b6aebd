package returns_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/sewasew/escrow-service/internal/testutil"
	"github.com/sewasew/escrow-service/internal/usecase/escrow"
	"github.com/sewasew/escrow-service/internal/usecase/order"
	"github.com/sewasew/escrow-service/internal/usecase/returns"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	gateway  *testutil.FakeGateway
	orders   *order.Usecase
	escrow   *escrow.Usecase
	returns  *returns.Usecase
	payments repository.PaymentRepository
	orderRs  repository.OrderRepository
	products repository.ProductRepository
	disputes repository.DisputeRepository

	buyerID  string
	sellerID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.OpenDB(t)
	gateway := testutil.NewFakeGateway()

	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	policyRepo := repository.NewDefaultTrialPolicyRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	returnRepo := repository.NewDefaultReturnRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)

	escrowUc := escrow.NewUsecase(
		db, orderRepo, paymentRepo, productRepo, policyRepo, userRepo,
		gateway, nil, nil,
		escrow.Config{
			Currency:       "ETB",
			Commission:     decimal.RequireFromString("0.05"),
			SellerBankCode: "855",
		},
	)

	return &fixture{
		db:       db,
		gateway:  gateway,
		orders:   order.NewUsecase(db, orderRepo, productRepo, policyRepo, escrowUc),
		escrow:   escrowUc,
		returns:  returns.NewUsecase(db, returnRepo, orderRepo, productRepo, disputeRepo, escrowUc, nil, nil),
		payments: paymentRepo,
		orderRs:  orderRepo,
		products: productRepo,
		disputes: disputeRepo,
		buyerID:  testutil.SeedUser(t, db, "buyer"),
		sellerID: testutil.SeedUser(t, db, "seller"),
	}
}

// activeTrialOrder walks an order through checkout into trial_active.
func (f *fixture) activeTrialOrder(t *testing.T) (orderID, productID string) {
	t.Helper()
	productID = testutil.SeedProduct(t, f.db, f.sellerID, "400.00")
	testutil.SeedTrialPolicy(t, f.db, productID, 14)

	result, err := f.orders.Create(f.buyerID, productID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	initiated, err := f.escrow.Initiate(context.Background(), result.Order.ID)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}
	if _, err := f.escrow.Confirm(context.Background(), initiated.TxRef); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	return result.Order.ID, productID
}

func TestInitiateReturnMintsSingleUseToken(t *testing.T) {
	f := newFixture(t)
	orderID, _ := f.activeTrialOrder(t)

	ret, err := f.returns.InitiateReturn(orderID, f.buyerID, "")
	if err != nil {
		t.Fatalf("initiate return: %v", err)
	}
	if ret.ReturnToken == "" {
		t.Error("no return token minted")
	}
	if ret.Status != domain.ReturnPending {
		t.Errorf("status = %s, want pending", ret.Status)
	}

	loaded, err := f.orderRs.GetByID(orderID)
	if err != nil {
		t.Fatalf("load order: %v", err)
	}
	if loaded.Status != domain.OrderReturnRequested {
		t.Errorf("order status = %s, want return_requested", loaded.Status)
	}
	wantExpiry := loaded.TrialEndsAt.Add(domain.ReturnGracePeriod)
	if !ret.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expiresAt = %v, want trial end + grace = %v", ret.ExpiresAt, wantExpiry)
	}
}

func TestInitiateReturnGuards(t *testing.T) {
	f := newFixture(t)
	orderID, _ := f.activeTrialOrder(t)

	if _, err := f.returns.InitiateReturn(orderID, f.sellerID, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign buyer err = %v, want ErrForbidden", err)
	}

	if _, err := f.returns.InitiateReturn(orderID, f.buyerID, ""); err != nil {
		t.Fatalf("initiate return: %v", err)
	}
	// Second request for the same order, whatever the order state.
	if _, err := f.returns.InitiateReturn(orderID, f.buyerID, ""); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("duplicate err = %v, want ErrInvalidTransition", err)
	}
}

func TestInitiateReturnAfterTrialDeadline(t *testing.T) {
	f := newFixture(t)
	orderID, _ := f.activeTrialOrder(t)

	past := time.Now().Add(-time.Hour)
	if err := f.db.Table("orders").Where("id = ?", orderID).Update("trial_ends_at", past).Error; err != nil {
		t.Fatalf("rewind trial: %v", err)
	}

	if _, err := f.returns.InitiateReturn(orderID, f.buyerID, ""); !errors.Is(err, domain.ErrTrialExpired) {
		t.Errorf("err = %v, want ErrTrialExpired", err)
	}
}

func TestInitiateReturnRequiresActiveTrial(t *testing.T) {
	f := newFixture(t)
	productID := testutil.SeedProduct(t, f.db, f.sellerID, "100.00")
	result, err := f.orders.Create(f.buyerID, productID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := f.returns.InitiateReturn(result.Order.ID, f.buyerID, ""); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestScanConfirmReleasesToBuyer(t *testing.T) {
	f := newFixture(t)
	orderID, productID := f.activeTrialOrder(t)
	ret, err := f.returns.InitiateReturn(orderID, f.buyerID, "")
	if err != nil {
		t.Fatalf("initiate return: %v", err)
	}

	result, err := f.returns.AcceptByScan(f.sellerID, ret.ReturnToken, domain.ScanConfirm, "", "")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.Return.Status != domain.ReturnConfirmed {
		t.Errorf("return status = %s, want confirmed", result.Return.Status)
	}
	if result.Return.ScannedAt == nil {
		t.Error("scannedAt not recorded")
	}

	settled, err := f.orderRs.GetByID(orderID)
	if err != nil {
		t.Fatalf("load order: %v", err)
	}
	if settled.Status != domain.OrderReturned {
		t.Errorf("order status = %s, want returned", settled.Status)
	}
	if settled.MoneyReleasedTo != f.buyerID {
		t.Errorf("moneyReleasedTo = %s, want buyer", settled.MoneyReleasedTo)
	}

	payment, err := f.payments.GetLatestByOrderID(orderID)
	if err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Status != domain.PaymentReleasedToBuyer {
		t.Errorf("payment status = %s, want released_to_buyer", payment.Status)
	}

	product, err := f.products.GetByID(productID)
	if err != nil {
		t.Fatalf("load product: %v", err)
	}
	if !product.IsAvailable {
		t.Error("product not freed after confirmed return")
	}
}

func TestScanTokenIsSingleUse(t *testing.T) {
	f := newFixture(t)
	orderID, _ := f.activeTrialOrder(t)
	ret, err := f.returns.InitiateReturn(orderID, f.buyerID, "")
	if err != nil {
		t.Fatalf("initiate return: %v", err)
	}

	if _, err := f.returns.AcceptByScan(f.sellerID, ret.ReturnToken, domain.ScanConfirm, "", ""); err != nil {
		t.Fatalf("first scan: %v", err)
	}
	if _, err := f.returns.AcceptByScan(f.sellerID, ret.ReturnToken, domain.ScanConfirm, "", ""); !errors.Is(err, domain.ErrAlreadyProcessed) {
		t.Errorf("replayed scan err = %v, want ErrAlreadyProcessed", err)
	}
}

func TestScanRejectsForeignSellerAndBadToken(t *testing.T) {
	f := newFixture(t)
	orderID, _ := f.activeTrialOrder(t)
	ret, err := f.returns.InitiateReturn(orderID, f.buyerID, "")
	if err != nil {
		t.Fatalf("initiate return: %v", err)
	}

	otherSeller := testutil.SeedUser(t, f.db, "seller")
	if _, err := f.returns.AcceptByScan(otherSeller, ret.ReturnToken, domain.ScanConfirm, "", ""); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign seller err = %v, want ErrForbidden", err)
	}
	if _, err := f.returns.AcceptByScan(f.sellerID, "RT-nope", domain.ScanConfirm, "", ""); !errors.Is(err, domain.ErrReturnNotFound) {
		t.Errorf("bad token err = %v, want ErrReturnNotFound", err)
	}
}

func TestScanRejectsExpiredWindow(t *testing.T) {
	f := newFixture(t)
	orderID, _ := f.activeTrialOrder(t)
	ret, err := f.returns.InitiateReturn(orderID, f.buyerID, "")
	if err != nil {
		t.Fatalf("initiate return: %v", err)
	}

	past := time.Now().Add(-time.Minute)
	if err := f.db.Table("returns").Where("id = ?", ret.ID).Update("expires_at", past).Error; err != nil {
		t.Fatalf("rewind expiry: %v", err)
	}

	if _, err := f.returns.AcceptByScan(f.sellerID, ret.ReturnToken, domain.ScanConfirm, "", ""); !errors.Is(err, domain.ErrReturnExpired) {
		t.Errorf("err = %v, want ErrReturnExpired", err)
	}
}

func TestScanClaimDefectOpensDispute(t *testing.T) {
	f := newFixture(t)
	orderID, productID := f.activeTrialOrder(t)
	ret, err := f.returns.InitiateReturn(orderID, f.buyerID, "")
	if err != nil {
		t.Fatalf("initiate return: %v", err)
	}

	// Evidence is mandatory for a defect claim.
	if _, err := f.returns.AcceptByScan(f.sellerID, ret.ReturnToken, domain.ScanClaimDefect, "", "scratched"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("missing photo err = %v, want ErrValidation", err)
	}

	result, err := f.returns.AcceptByScan(f.sellerID, ret.ReturnToken, domain.ScanClaimDefect,
		"https://cdn.example.com/defect.jpg", "deep scratch on the back panel")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.Return.Status != domain.ReturnDefectClaimed {
		t.Errorf("return status = %s, want defect_claimed", result.Return.Status)
	}
	if result.Dispute == nil {
		t.Fatal("no dispute opened")
	}
	if result.Dispute.Status != domain.DisputeOpen {
		t.Errorf("dispute status = %s, want open", result.Dispute.Status)
	}
	if result.Dispute.InitiatedBy != f.sellerID {
		t.Errorf("dispute initiatedBy = %s, want seller", result.Dispute.InitiatedBy)
	}

	frozen, err := f.orderRs.GetByID(orderID)
	if err != nil {
		t.Fatalf("load order: %v", err)
	}
	if frozen.Status != domain.OrderDisputed {
		t.Errorf("order status = %s, want disputed", frozen.Status)
	}

	payment, err := f.payments.GetLatestByOrderID(orderID)
	if err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Status != domain.PaymentDisputed {
		t.Errorf("payment status = %s, want disputed", payment.Status)
	}

	// Arbitration owns the unit until a ruling.
	product, err := f.products.GetByID(productID)
	if err != nil {
		t.Fatalf("load product: %v", err)
	}
	if product.IsAvailable {
		t.Error("product freed while dispute is open")
	}
}

func TestExpireReturnsSettlesToSeller(t *testing.T) {
	f := newFixture(t)
	orderID, _ := f.activeTrialOrder(t)
	ret, err := f.returns.InitiateReturn(orderID, f.buyerID, "")
	if err != nil {
		t.Fatalf("initiate return: %v", err)
	}

	past := time.Now().Add(-time.Minute)
	if err := f.db.Table("returns").Where("id = ?", ret.ID).Update("expires_at", past).Error; err != nil {
		t.Fatalf("rewind expiry: %v", err)
	}

	if err := f.returns.ExpireReturns(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	expired, err := f.returns.GetByOrderID(orderID, f.buyerID, "buyer")
	if err != nil {
		t.Fatalf("load return: %v", err)
	}
	if expired.Status != domain.ReturnExpired {
		t.Errorf("return status = %s, want expired", expired.Status)
	}

	settled, err := f.orderRs.GetByID(orderID)
	if err != nil {
		t.Fatalf("load order: %v", err)
	}
	if settled.Status != domain.OrderPaid {
		t.Errorf("order status = %s, want paid", settled.Status)
	}

	payment, err := f.payments.GetLatestByOrderID(orderID)
	if err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Status != domain.PaymentReleasedToSeller {
		t.Errorf("payment status = %s, want released_to_seller", payment.Status)
	}
}

func TestGetByOrderIDGuardsRequester(t *testing.T) {
	f := newFixture(t)
	orderID, _ := f.activeTrialOrder(t)
	if _, err := f.returns.InitiateReturn(orderID, f.buyerID, ""); err != nil {
		t.Fatalf("initiate return: %v", err)
	}

	if _, err := f.returns.GetByOrderID(orderID, f.buyerID, "buyer"); err != nil {
		t.Errorf("buyer denied: %v", err)
	}
	if _, err := f.returns.GetByOrderID(orderID, "someone-else", "buyer"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger err = %v, want ErrForbidden", err)
	}
	if _, err := f.returns.GetByOrderID(orderID, "someone-else", "admin"); err != nil {
		t.Errorf("admin denied: %v", err)
	}
}
