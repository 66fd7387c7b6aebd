package domain

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrReturnNotFound  = errors.New("return not found")
	ErrDisputeNotFound = errors.New("dispute not found")
	ErrPolicyNotFound  = errors.New("trial policy not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrOrderNotPayable    = errors.New("order not payable")
	ErrAlreadyProcessed   = errors.New("already processed")
	ErrTrialExpired       = errors.New("trial period expired")
	ErrReturnExpired      = errors.New("return window expired")
	ErrReturnExists       = errors.New("return already initiated for order")
	ErrDisputeExists      = errors.New("dispute already handled for return")
	ErrPolicyExists       = errors.New("trial policy already exists for product")
	ErrPolicyLocked       = errors.New("trial policy locked by outstanding trial")

	ErrSellerNotConfigured = errors.New("seller payout destination not configured")
	ErrGateway             = errors.New("payment gateway failure")
)
