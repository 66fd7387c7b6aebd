package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutSplit routes a share of the collected funds straight to the
// seller's gateway subaccount. It is attached only for direct (non-trial)
// sales; trial sales are collected whole and held by the platform.
type CheckoutSplit struct {
	SubaccountID string
	SplitType    string
	SplitValue   decimal.Decimal
}

type CheckoutRequest struct {
	TxRef     string
	Amount    decimal.Decimal
	Currency  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Split     *CheckoutSplit
}

// VerifyStatus is the gateway's authoritative view of one transaction.
type VerifyStatus string

const (
	VerifySuccess VerifyStatus = "success"
	VerifyFailed  VerifyStatus = "failed"
	VerifyPending VerifyStatus = "pending"
)

type SubaccountRequest struct {
	BusinessName  string
	AccountName   string
	AccountNumber string
	BankCode      string
	SplitValue    decimal.Decimal
}

// PaymentGateway is the hosted-checkout provider boundary. Initialize is
// called before commit so a failed call aborts the surrounding transaction;
// Verify is called from the asynchronous confirmation path.
type PaymentGateway interface {
	Initialize(ctx context.Context, req CheckoutRequest) (checkoutURL string, err error)
	Verify(ctx context.Context, txRef string) (VerifyStatus, error)
	CreateSubaccount(ctx context.Context, req SubaccountRequest) (subaccountID string, err error)
}
