package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewasew/escrow-service/internal/delivery/http/dto"
	"github.com/sewasew/escrow-service/internal/delivery/http/middleware"
	"github.com/sewasew/escrow-service/internal/domain"
	"github.com/sewasew/escrow-service/internal/usecase/returns"
)

type ReturnHandler struct {
	returns *returns.Usecase
}

func NewReturnHandler(returnsUc *returns.Usecase) *ReturnHandler {
	return &ReturnHandler{returns: returnsUc}
}

func (h *ReturnHandler) Initiate(c echo.Context) error {
	var req dto.InitiateReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OrderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "orderId is required")
	}

	var buyerNote string
	if req.HasDefect {
		buyerNote = req.DefectDescription
	}
	ret, err := h.returns.InitiateReturn(req.OrderID, middleware.UserID(c), buyerNote)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.InitiateReturnResponse{
		ReturnID:    ret.ID,
		ReturnToken: ret.ReturnToken,
		Status:      string(ret.Status),
		ExpiresAt:   ret.ExpiresAt,
	})
}

func (h *ReturnHandler) Scan(c echo.Context) error {
	var req dto.ScanReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ReturnToken == "" || req.Action == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "returnToken and action are required")
	}

	result, err := h.returns.AcceptByScan(
		middleware.UserID(c),
		req.ReturnToken,
		domain.ScanAction(req.Action),
		req.DefectPhotoURL,
		req.DefectDescription,
	)
	if err != nil {
		return toHTTPError(err)
	}

	resp := dto.ScanReturnResponse{
		OrderID: result.Return.OrderID,
		Status:  string(result.Return.Status),
	}
	if result.Dispute != nil {
		resp.Message = "defect claimed, dispute opened"
		resp.DisputeID = result.Dispute.ID
	} else {
		resp.Message = "return confirmed, funds released to buyer"
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReturnHandler) GetByOrder(c echo.Context) error {
	ret, err := h.returns.GetByOrderID(c.Param("orderID"), middleware.UserID(c), middleware.Role(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReturnResponse(ret))
}

func (h *ReturnHandler) ListForSeller(c echo.Context) error {
	return h.list(c, func(status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error) {
		return h.returns.ListBySeller(middleware.UserID(c), status, page, limit)
	})
}

func (h *ReturnHandler) ListForBuyer(c echo.Context) error {
	return h.list(c, func(status domain.ReturnStatus, page, limit int) ([]*domain.Return, int64, error) {
		return h.returns.ListByBuyer(middleware.UserID(c), status, page, limit)
	})
}

func (h *ReturnHandler) list(c echo.Context, fetch func(domain.ReturnStatus, int, int) ([]*domain.Return, int64, error)) error {
	page, limit := pageParams(c)
	status := domain.ReturnStatus(c.QueryParam("status"))

	rets, total, err := fetch(status, page, limit)
	if err != nil {
		return toHTTPError(err)
	}

	resp := dto.ListReturnsResponse{
		Returns:    make([]dto.ReturnResponse, len(rets)),
		Pagination: dto.Pagination{Page: page, Limit: limit, Total: total},
	}
	for i, ret := range rets {
		resp.Returns[i] = dto.ToReturnResponse(ret)
	}
	return c.JSON(http.StatusOK, resp)
}
