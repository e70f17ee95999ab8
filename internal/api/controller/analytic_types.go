package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

func (c *Controller) ListAnalyticTypes(ctx echo.Context) error {
	ats, err := c.analytics.ListAnalyticTypes(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ats)
}

func (c *Controller) CreateAnalyticType(ctx echo.Context) error {
	req := new(domain.CreateAnalyticTypeRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	at := &domain.AnalyticType{ID: req.ID, Name: req.Name}
	if err := c.analytics.CreateAnalyticType(ctx.Request().Context(), at); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, at)
}

func (c *Controller) UpdateAnalyticType(ctx echo.Context) error {
	req := new(domain.UpdateAnalyticTypeRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if err := c.analytics.UpdateAnalyticType(ctx.Request().Context(), ctx.Param("id"), req.Name); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) DeleteAnalyticType(ctx echo.Context) error {
	if err := c.analytics.DeleteAnalyticType(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
