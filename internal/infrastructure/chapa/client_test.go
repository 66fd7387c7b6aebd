package chapa

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/shopspring/decimal"
)

func TestInitializeSendsSplitAndAuth(t *testing.T) {
	var got initializeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/transaction/initialize" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]string{"checkout_url": "https://checkout.chapa.co/abc"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", "https://api.example.com/payments/verify")
	url, err := client.Initialize(context.Background(), domain.CheckoutRequest{
		TxRef:    "TX-1",
		Amount:   decimal.RequireFromString("120.50"),
		Currency: "ETB",
		Email:    "buyer@example.com",
		Split: &domain.CheckoutSplit{
			SubaccountID: "SUB-1",
			SplitType:    "percentage",
			SplitValue:   decimal.RequireFromString("0.05"),
		},
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if url != "https://checkout.chapa.co/abc" {
		t.Errorf("checkout url = %s", url)
	}
	if got.TxRef != "TX-1" || got.CallbackURL != "https://api.example.com/payments/verify" {
		t.Errorf("request = %+v", got)
	}
	if got.Subaccounts == nil || got.Subaccounts.ID != "SUB-1" {
		t.Errorf("subaccounts = %+v", got.Subaccounts)
	}
}

func TestInitializeOmitsSplitForTrialSales(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, ok := raw["subaccounts"]; ok {
			t.Error("subaccounts present on splitless initialize")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]string{"checkout_url": "https://checkout.chapa.co/xyz"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", "cb")
	if _, err := client.Initialize(context.Background(), domain.CheckoutRequest{
		TxRef:  "TX-2",
		Amount: decimal.RequireFromString("80.00"),
	}); err != nil {
		t.Fatalf("initialize: %v", err)
	}
}

func TestInitializeErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid currency"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", "cb")
	_, err := client.Initialize(context.Background(), domain.CheckoutRequest{TxRef: "TX-3"})
	if !errors.Is(err, domain.ErrGateway) {
		t.Fatalf("err = %v, want ErrGateway", err)
	}
	if !strings.Contains(err.Error(), "invalid currency") {
		t.Errorf("err = %v, want gateway message surfaced", err)
	}
}

func TestVerifyMapsStatuses(t *testing.T) {
	cases := []struct {
		wire string
		want domain.VerifyStatus
	}{
		{"success", domain.VerifySuccess},
		{"failed", domain.VerifyFailed},
		{"pending", domain.VerifyPending},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/v1/transaction/verify/") {
				t.Errorf("path = %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"status": "success",
				"data":   map[string]string{"status": tc.wire},
			})
		}))

		client := NewClient(server.URL, "sk-test", "cb")
		got, err := client.Verify(context.Background(), "TX-1")
		server.Close()
		if err != nil {
			t.Fatalf("verify %q: %v", tc.wire, err)
		}
		if got != tc.want {
			t.Errorf("verify %q = %s, want %s", tc.wire, got, tc.want)
		}
	}
}

func TestVerifyRejectsUnknownStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]string{"status": "reversed"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", "cb")
	if _, err := client.Verify(context.Background(), "TX-1"); !errors.Is(err, domain.ErrGateway) {
		t.Errorf("err = %v, want ErrGateway", err)
	}
}

func TestCreateSubaccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got subaccountRequest
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if got.SplitType != "percentage" {
			t.Errorf("split_type = %s, want percentage", got.SplitType)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]string{"subaccount_id": "SUB-9"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", "cb")
	id, err := client.CreateSubaccount(context.Background(), domain.SubaccountRequest{
		BusinessName:  "Test Seller",
		AccountName:   "Test",
		AccountNumber: "0911223344",
		BankCode:      "855",
		SplitValue:    decimal.RequireFromString("0.05"),
	})
	if err != nil {
		t.Fatalf("create subaccount: %v", err)
	}
	if id != "SUB-9" {
		t.Errorf("subaccount id = %s, want SUB-9", id)
	}
}
