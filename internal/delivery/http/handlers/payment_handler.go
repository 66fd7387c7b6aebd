package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewasew/escrow-service/internal/delivery/http/dto"
	"github.com/sewasew/escrow-service/internal/usecase/escrow"
)

type PaymentHandler struct {
	escrow *escrow.Usecase
}

func NewPaymentHandler(escrowUc *escrow.Usecase) *PaymentHandler {
	return &PaymentHandler{escrow: escrowUc}
}

func (h *PaymentHandler) Initiate(c echo.Context) error {
	var req dto.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OrderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "orderId is required")
	}

	result, err := h.escrow.Initiate(c.Request().Context(), req.OrderID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.InitiatePaymentResponse{
		CheckoutURL: result.CheckoutURL,
		TxRef:       result.TxRef,
		HasTrial:    result.HasTrial,
	})
}

// Verify is the gateway's callback. It arrives unauthenticated; the txRef is
// only trusted after the in-transaction gateway verification, so a forged
// call cannot settle anything the gateway does not confirm. The gateway may
// deliver it via GET with a query param or POST with a JSON body.
func (h *PaymentHandler) Verify(c echo.Context) error {
	txRef := c.QueryParam("txRef")
	if txRef == "" {
		var req dto.VerifyPaymentRequest
		if err := c.Bind(&req); err == nil {
			txRef = req.TxRef
		}
	}
	if txRef == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "txRef is required")
	}

	result, err := h.escrow.Confirm(c.Request().Context(), txRef)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.PaymentStateResponse{
		Payment: dto.ToPaymentResponse(result.Payment),
		Order:   dto.ToOrderResponse(result.Order),
	})
}

// Status is the polling fallback for clients that cannot receive the
// gateway callback.
func (h *PaymentHandler) Status(c echo.Context) error {
	txRef := c.QueryParam("txRef")
	if txRef == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "txRef is required")
	}

	payment, order, err := h.escrow.Status(txRef)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.PaymentStateResponse{
		Payment: dto.ToPaymentResponse(payment),
		Order:   dto.ToOrderResponse(order),
	})
}
