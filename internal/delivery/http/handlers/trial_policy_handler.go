package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewasew/escrow-service/internal/delivery/http/dto"
	"github.com/sewasew/escrow-service/internal/delivery/http/middleware"
	"github.com/sewasew/escrow-service/internal/usecase/trialpolicy"
)

type TrialPolicyHandler struct {
	policies *trialpolicy.Usecase
}

func NewTrialPolicyHandler(policies *trialpolicy.Usecase) *TrialPolicyHandler {
	return &TrialPolicyHandler{policies: policies}
}

func (h *TrialPolicyHandler) Create(c echo.Context) error {
	var req dto.TrialPolicyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.policies.Create(c.Param("productID"), middleware.UserID(c), trialpolicy.PolicyInput{
		TrialDays:         req.TrialDays,
		ReturnWindowHours: req.ReturnWindowHours,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToTrialPolicyResponse(created))
}

func (h *TrialPolicyHandler) Update(c echo.Context) error {
	var req dto.TrialPolicyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.policies.Update(c.Param("productID"), middleware.UserID(c), trialpolicy.PolicyInput{
		TrialDays:         req.TrialDays,
		ReturnWindowHours: req.ReturnWindowHours,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTrialPolicyResponse(updated))
}

func (h *TrialPolicyHandler) Delete(c echo.Context) error {
	if err := h.policies.Delete(c.Param("productID"), middleware.UserID(c)); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TrialPolicyHandler) Get(c echo.Context) error {
	policy, err := h.policies.Get(c.Param("productID"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTrialPolicyResponse(policy))
}
