package dispute_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/infrastructure/postgres/repository"
	"github.com/sewasew/escrow-service/internal/testutil"
	"github.com/sewasew/escrow-service/internal/usecase/dispute"
	"github.com/sewasew/escrow-service/internal/usecase/escrow"
	"github.com/sewasew/escrow-service/internal/usecase/order"
	"github.com/sewasew/escrow-service/internal/usecase/returns"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	orders   *order.Usecase
	escrow   *escrow.Usecase
	returns  *returns.Usecase
	disputes *dispute.Usecase
	payments repository.PaymentRepository
	orderRs  repository.OrderRepository
	products repository.ProductRepository

	buyerID  string
	sellerID string
	adminID  string
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
		orders:   order.NewUsecase(db, orderRepo, productRepo, policyRepo, escrowUc),
		escrow:   escrowUc,
		returns:  returns.NewUsecase(db, returnRepo, orderRepo, productRepo, disputeRepo, escrowUc, nil, nil),
		disputes: dispute.NewUsecase(db, disputeRepo, orderRepo, escrowUc, nil, nil),
		payments: paymentRepo,
		orderRs:  orderRepo,
		products: productRepo,
		buyerID:  testutil.SeedUser(t, db, "buyer"),
		sellerID: testutil.SeedUser(t, db, "seller"),
		adminID:  testutil.SeedUser(t, db, "admin"),
	}
}

// openDispute walks an order through trial checkout, return initiation and a
// defect claim, leaving an open dispute behind.
func (f *fixture) openDispute(t *testing.T) (disputeID, orderID, productID string) {
	t.Helper()
	productID = testutil.SeedProduct(t, f.db, f.sellerID, "400.00")
	testutil.SeedTrialPolicy(t, f.db, productID, 14)

	created, err := f.orders.Create(f.buyerID, productID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	orderID = created.Order.ID

	initiated, err := f.escrow.Initiate(context.Background(), orderID)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}
	if _, err := f.escrow.Confirm(context.Background(), initiated.TxRef); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	ret, err := f.returns.InitiateReturn(orderID, f.buyerID, "")
	if err != nil {
		t.Fatalf("initiate return: %v", err)
	}
	scanned, err := f.returns.AcceptByScan(f.sellerID, ret.ReturnToken, domain.ScanClaimDefect,
		"https://cdn.example.com/defect.jpg", "cracked screen")
	if err != nil {
		t.Fatalf("claim defect: %v", err)
	}
	return scanned.Dispute.ID, orderID, productID
}

func TestStartReviewTransitions(t *testing.T) {
	f := newFixture(t)
	disputeID, _, _ := f.openDispute(t)

	reviewed, err := f.disputes.StartReview(disputeID)
	if err != nil {
		t.Fatalf("start review: %v", err)
	}
	if reviewed.Status != domain.DisputeUnderReview {
		t.Errorf("status = %s, want under_review", reviewed.Status)
	}

	if _, err := f.disputes.StartReview(disputeID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("second review err = %v, want ErrInvalidTransition", err)
	}
}

func TestResolveForBuyerCompletesReturn(t *testing.T) {
	f := newFixture(t)
	disputeID, orderID, productID := f.openDispute(t)

	resolved, err := f.disputes.Resolve(disputeID, "photo shows pre-existing wear", f.adminID, domain.PartyBuyer)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != domain.DisputeResolved {
		t.Errorf("dispute status = %s, want resolved", resolved.Status)
	}
	if resolved.ResolvedBy != f.adminID || resolved.ResolvedAt == nil {
		t.Error("resolution metadata not recorded")
	}

	settled, err := f.orderRs.GetByID(orderID)
	if err != nil {
		t.Fatalf("load order: %v", err)
	}
	if settled.Status != domain.OrderReturned {
		t.Errorf("order status = %s, want returned", settled.Status)
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
		t.Error("product not freed after buyer win")
	}
}

func TestResolveForSellerPaysOut(t *testing.T) {
	f := newFixture(t)
	disputeID, orderID, productID := f.openDispute(t)

	if _, err := f.disputes.Resolve(disputeID, "defect caused by the buyer", f.adminID, domain.PartySeller); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	settled, err := f.orderRs.GetByID(orderID)
	if err != nil {
		t.Fatalf("load order: %v", err)
	}
	if settled.Status != domain.OrderPaid {
		t.Errorf("order status = %s, want paid", settled.Status)
	}
	if settled.MoneyReleasedTo != f.sellerID {
		t.Errorf("moneyReleasedTo = %s, want seller", settled.MoneyReleasedTo)
	}

	product, err := f.products.GetByID(productID)
	if err != nil {
		t.Fatalf("load product: %v", err)
	}
	if product.IsAvailable {
		t.Error("product freed although the seller kept the sale")
	}
}

func TestResolveIsTerminal(t *testing.T) {
	f := newFixture(t)
	disputeID, _, _ := f.openDispute(t)

	if _, err := f.disputes.Resolve(disputeID, "ruling", f.adminID, domain.PartyBuyer); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := f.disputes.Resolve(disputeID, "second ruling", f.adminID, domain.PartySeller); !errors.Is(err, domain.ErrAlreadyProcessed) {
		t.Errorf("second resolve err = %v, want ErrAlreadyProcessed", err)
	}
}

func TestResolveValidatesInput(t *testing.T) {
	f := newFixture(t)
	disputeID, _, _ := f.openDispute(t)

	if _, err := f.disputes.Resolve(disputeID, "", f.adminID, domain.PartyBuyer); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty resolution err = %v, want ErrValidation", err)
	}
	if _, err := f.disputes.Resolve(disputeID, "ruling", f.adminID, domain.Party("platform")); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad winner err = %v, want ErrValidation", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	f := newFixture(t)
	first, _, _ := f.openDispute(t)
	second, _, _ := f.openDispute(t)

	if _, err := f.disputes.Resolve(first, "ruling", f.adminID, domain.PartyBuyer); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	open, total, err := f.disputes.List(domain.DisputeOpen, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(open) != 1 || open[0].ID != second {
		t.Errorf("open disputes = %d (total %d), want the unresolved one", len(open), total)
	}

	all, total, err := f.disputes.List("", 1, 10)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Errorf("all disputes = %d (total %d), want 2", len(all), total)
	}
}
