package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sewasew/escrow-service/internal/domain"
)

// toHTTPError is the single place domain errors become HTTP statuses.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrReturnNotFound),
		errors.Is(err, domain.ErrDisputeNotFound),
		errors.Is(err, domain.ErrPolicyNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrProductUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrOrderNotPayable),
		errors.Is(err, domain.ErrAlreadyProcessed),
		errors.Is(err, domain.ErrTrialExpired),
		errors.Is(err, domain.ErrReturnExpired),
		errors.Is(err, domain.ErrReturnExists),
		errors.Is(err, domain.ErrSellerNotConfigured):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrDisputeExists),
		errors.Is(err, domain.ErrPolicyExists),
		errors.Is(err, domain.ErrPolicyLocked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrGateway):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return err
}

func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
