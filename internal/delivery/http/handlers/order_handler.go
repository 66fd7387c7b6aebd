package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewasew/escrow-service/internal/delivery/http/dto"
	"github.com/sewasew/escrow-service/internal/delivery/http/middleware"
	"github.com/sewasew/escrow-service/internal/usecase/order"
)

type OrderHandler struct {
	orders *order.Usecase
}

func NewOrderHandler(orders *order.Usecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId is required")
	}

	result, err := h.orders.Create(middleware.UserID(c), req.ProductID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		OrderID:  result.Order.ID,
		Status:   string(result.Order.Status),
		HasTrial: result.HasTrial,
	})
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	cancelled, err := h.orders.Cancel(c.Param("orderID"), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToOrderResponse(cancelled))
}

func (h *OrderHandler) Get(c echo.Context) error {
	found, err := h.orders.GetByID(c.Param("orderID"))
	if err != nil {
		return toHTTPError(err)
	}
	if middleware.Role(c) != "admin" && found.BuyerID != middleware.UserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not your order")
	}
	return c.JSON(http.StatusOK, dto.ToOrderResponse(found))
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	page, limit := pageParams(c)
	orders, total, err := h.orders.ListByBuyer(middleware.UserID(c), page, limit)
	if err != nil {
		return toHTTPError(err)
	}

	resp := dto.ListOrdersResponse{
		Orders:     make([]dto.OrderResponse, len(orders)),
		Pagination: dto.Pagination{Page: page, Limit: limit, Total: total},
	}
	for i, o := range orders {
		resp.Orders[i] = dto.ToOrderResponse(o)
	}
	return c.JSON(http.StatusOK, resp)
}
