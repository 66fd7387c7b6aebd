package chapa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Client talks to the Chapa hosted-checkout API. It implements
// domain.PaymentGateway.
type Client struct {
	baseURL     string
	secretKey   string
	callbackURL string
	httpClient  *http.Client
}

func NewClient(baseURL, secretKey, callbackURL string) *Client {
	return &Client{
		baseURL:     baseURL,
		secretKey:   secretKey,
		callbackURL: callbackURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type subaccountSplit struct {
	ID         string          `json:"id"`
	SplitType  string          `json:"split_type"`
	SplitValue decimal.Decimal `json:"split_value"`
}

type initializeRequest struct {
	Amount      decimal.Decimal  `json:"amount"`
	Currency    string           `json:"currency"`
	Email       string           `json:"email"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	PhoneNumber string           `json:"phone_number,omitempty"`
	TxRef       string           `json:"tx_ref"`
	CallbackURL string           `json:"callback_url"`
	Subaccounts *subaccountSplit `json:"subaccounts,omitempty"`
}

type initializeResponse struct {
	Status string `json:"status"`
	Data   struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
	Message json.RawMessage `json:"message"`
}

type verifyResponse struct {
	Status string `json:"status"`
	Data   struct {
		Status string `json:"status"`
	} `json:"data"`
}

type subaccountRequest struct {
	BusinessName  string          `json:"business_name"`
	AccountName   string          `json:"account_name"`
	BankCode      string          `json:"bank_code"`
	AccountNumber string          `json:"account_number"`
	SplitType     string          `json:"split_type"`
	SplitValue    decimal.Decimal `json:"split_value"`
}

type subaccountResponse struct {
	Status string `json:"status"`
	Data   struct {
		SubaccountID string `json:"subaccount_id"`
	} `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, req domain.CheckoutRequest) (string, error) {
	body := initializeRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.Phone,
		TxRef:       req.TxRef,
		CallbackURL: c.callbackURL,
	}
	if req.Split != nil {
		body.Subaccounts = &subaccountSplit{
			ID:         req.Split.SubaccountID,
			SplitType:  req.Split.SplitType,
			SplitValue: req.Split.SplitValue,
		}
	}

	var resp initializeResponse
	if err := c.post(ctx, "/v1/transaction/initialize", body, &resp); err != nil {
		return "", err
	}
	if resp.Data.CheckoutURL == "" {
		return "", fmt.Errorf("%w: no checkout url in initialize response", domain.ErrGateway)
	}
	return resp.Data.CheckoutURL, nil
}

func (c *Client) Verify(ctx context.Context, txRef string) (domain.VerifyStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/transaction/verify/%s", c.baseURL, txRef), nil)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	var resp verifyResponse
	if err := c.do(httpReq, &resp); err != nil {
		return "", err
	}

	switch resp.Data.Status {
	case "success":
		return domain.VerifySuccess, nil
	case "failed":
		return domain.VerifyFailed, nil
	case "pending":
		return domain.VerifyPending, nil
	default:
		return "", fmt.Errorf("%w: unexpected verify status %q", domain.ErrGateway, resp.Data.Status)
	}
}

func (c *Client) CreateSubaccount(ctx context.Context, req domain.SubaccountRequest) (string, error) {
	body := subaccountRequest{
		BusinessName:  req.BusinessName,
		AccountName:   req.AccountName,
		BankCode:      req.BankCode,
		AccountNumber: req.AccountNumber,
		SplitType:     "percentage",
		SplitValue:    req.SplitValue,
	}

	var resp subaccountResponse
	if err := c.post(ctx, "/v1/subaccount", body, &resp); err != nil {
		return "", err
	}
	if resp.Data.SubaccountID == "" {
		return "", fmt.Errorf("%w: no subaccount id in response", domain.ErrGateway)
	}
	return resp.Data.SubaccountID, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	requestBodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq, out)
}

func (c *Client) do(req *http.Request, out any) error {
	response, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", domain.ErrGateway, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errorResponse struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(responseBodyBytes, &errorResponse); err == nil && errorResponse.Message != "" {
			return fmt.Errorf("%w: %s", domain.ErrGateway, errorResponse.Message)
		}
		return fmt.Errorf("%w: status %d", domain.ErrGateway, response.StatusCode)
	}

	if err := json.Unmarshal(responseBodyBytes, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrGateway, err)
	}
	return nil
}
