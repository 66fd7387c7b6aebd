package domain

import (
	"testing"
	"time"
)

func TestHasTrialRoutesOnExistence(t *testing.T) {
	if HasTrial(nil) {
		t.Error("nil policy reported as trial")
	}
	// The active flag is irrelevant for routing.
	if !HasTrial(&TrialPolicy{Active: false}) {
		t.Error("inactive policy must still route to escrow")
	}
}

func TestTrialEnd(t *testing.T) {
	policy := TrialPolicy{TrialDays: 14}
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if got, want := policy.TrialEnd(start), start.AddDate(0, 0, 14); !got.Equal(want) {
		t.Errorf("TrialEnd = %v, want %v", got, want)
	}
}

func TestOrderTransitionsGates(t *testing.T) {
	cases := []struct {
		status      OrderStatus
		cancellable bool
		payable     bool
	}{
		{OrderPending, true, true},
		{OrderTrialActive, true, true},
		{OrderReturnRequested, false, false},
		{OrderPaid, false, false},
		{OrderReturned, false, false},
		{OrderDisputed, false, false},
		{OrderCancelled, false, false},
	}
	for _, tc := range cases {
		o := Order{Status: tc.status}
		if o.Cancellable() != tc.cancellable {
			t.Errorf("%s: Cancellable = %v, want %v", tc.status, o.Cancellable(), tc.cancellable)
		}
		if o.Payable() != tc.payable {
			t.Errorf("%s: Payable = %v, want %v", tc.status, o.Payable(), tc.payable)
		}
	}
}

func TestPaymentTerminal(t *testing.T) {
	terminal := []PaymentStatus{PaymentReleasedToSeller, PaymentReleasedToBuyer, PaymentFailed}
	for _, status := range terminal {
		if !(&Payment{Status: status}).Terminal() {
			t.Errorf("%s not reported terminal", status)
		}
	}
	open := []PaymentStatus{PaymentPending, PaymentHeldInEscrow, PaymentDisputed}
	for _, status := range open {
		if (&Payment{Status: status}).Terminal() {
			t.Errorf("%s reported terminal", status)
		}
	}
}
