package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewasew/escrow-service/internal/delivery/http/dto"
	"github.com/sewasew/escrow-service/internal/delivery/http/middleware"
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/usecase/dispute"
)

type DisputeHandler struct {
	disputes *dispute.Usecase
}

func NewDisputeHandler(disputes *dispute.Usecase) *DisputeHandler {
	return &DisputeHandler{disputes: disputes}
}

func (h *DisputeHandler) Get(c echo.Context) error {
	found, err := h.disputes.GetByID(c.Param("disputeID"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToDisputeResponse(found))
}

func (h *DisputeHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	status := domain.DisputeStatus(c.QueryParam("status"))

	disputes, total, err := h.disputes.List(status, page, limit)
	if err != nil {
		return toHTTPError(err)
	}

	resp := dto.ListDisputesResponse{
		Disputes:   make([]dto.DisputeResponse, len(disputes)),
		Pagination: dto.Pagination{Page: page, Limit: limit, Total: total},
	}
	for i, d := range disputes {
		resp.Disputes[i] = dto.ToDisputeResponse(d)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DisputeHandler) StartReview(c echo.Context) error {
	reviewed, err := h.disputes.StartReview(c.Param("disputeID"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToDisputeResponse(reviewed))
}

func (h *DisputeHandler) Resolve(c echo.Context) error {
	var req dto.ResolveDisputeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resolved, err := h.disputes.Resolve(
		c.Param("disputeID"),
		req.Resolution,
		middleware.UserID(c),
		domain.Party(req.Winner),
	)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToDisputeResponse(resolved))
}
