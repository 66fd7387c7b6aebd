package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sewasew/escrow-service/internal/domain"
)

func TestToHTTPErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrOrderNotFound, http.StatusNotFound},
		{domain.ErrPaymentNotFound, http.StatusNotFound},
		{domain.ErrReturnNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrProductUnavailable, http.StatusBadRequest},
		{domain.ErrOrderNotPayable, http.StatusBadRequest},
		{domain.ErrAlreadyProcessed, http.StatusBadRequest},
		{domain.ErrTrialExpired, http.StatusBadRequest},
		{domain.ErrReturnExpired, http.StatusBadRequest},
		{domain.ErrReturnExists, http.StatusBadRequest},
		{domain.ErrSellerNotConfigured, http.StatusBadRequest},
		{domain.ErrPolicyExists, http.StatusConflict},
		{domain.ErrPolicyLocked, http.StatusConflict},
		{domain.ErrDisputeExists, http.StatusConflict},
		{domain.ErrGateway, http.StatusBadGateway},
	}
	for _, tc := range cases {
		var httpErr *echo.HTTPError
		if !errors.As(toHTTPError(tc.err), &httpErr) {
			t.Errorf("%v not mapped to an HTTP error", tc.err)
			continue
		}
		if httpErr.Code != tc.code {
			t.Errorf("%v mapped to %d, want %d", tc.err, httpErr.Code, tc.code)
		}
	}
}

func TestToHTTPErrorMatchesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("initialize: %w", domain.ErrGateway)
	var httpErr *echo.HTTPError
	if !errors.As(toHTTPError(wrapped), &httpErr) || httpErr.Code != http.StatusBadGateway {
		t.Errorf("wrapped gateway error not mapped: %v", toHTTPError(wrapped))
	}
}

func TestToHTTPErrorPassesUnknownThrough(t *testing.T) {
	unknown := errors.New("disk on fire")
	if got := toHTTPError(unknown); got != unknown {
		t.Errorf("unknown error rewritten: %v", got)
	}
}
