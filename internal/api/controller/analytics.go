package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

func (c *Controller) ListAnalytics(ctx echo.Context) error {
	typeID := ctx.QueryParams().Get("type_id")

	var (
		as  []*domain.Analytic
		err error
	)
	if typeID != "" {
		as, err = c.analytics.ListAnalyticsByType(ctx.Request().Context(), typeID)
	} else {
		as, err = c.analytics.ListAnalytics(ctx.Request().Context())
	}
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, as)
}

func (c *Controller) CreateAnalytic(ctx echo.Context) error {
	req := new(domain.CreateAnalyticRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	a := &domain.Analytic{AnalyticTypeID: req.AnalyticTypeID, ID: req.ID, Name: req.Name}
	if err := c.analytics.CreateAnalytic(ctx.Request().Context(), a); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, a)
}

func (c *Controller) UpdateAnalytic(ctx echo.Context) error {
	req := new(domain.UpdateAnalyticRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	err := c.analytics.UpdateAnalytic(ctx.Request().Context(), ctx.Param("type_id"), ctx.Param("id"), req.Name)
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) DeleteAnalytic(ctx echo.Context) error {
	err := c.analytics.DeleteAnalytic(ctx.Request().Context(), ctx.Param("type_id"), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
