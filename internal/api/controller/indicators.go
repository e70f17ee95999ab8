package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

func (c *Controller) ListIndicators(ctx echo.Context) error {
	inds, err := c.indicators.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, inds)
}

func (c *Controller) CreateIndicator(ctx echo.Context) error {
	req := new(domain.CreateIndicatorRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	ind := &domain.Indicator{
		ID:            req.ID,
		Name:          req.Name,
		AnalyticType1: domain.NullIfEmpty(&req.AnalyticType1),
		AnalyticType2: domain.NullIfEmpty(&req.AnalyticType2),
		AnalyticType3: domain.NullIfEmpty(&req.AnalyticType3),
	}
	if err := c.indicators.Create(ctx.Request().Context(), ind); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, ind)
}

func (c *Controller) UpdateIndicator(ctx echo.Context) error {
	req := new(domain.UpdateIndicatorRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	ind := &domain.Indicator{
		ID:            ctx.Param("id"),
		Name:          req.Name,
		AnalyticType1: domain.NullIfEmpty(&req.AnalyticType1),
		AnalyticType2: domain.NullIfEmpty(&req.AnalyticType2),
		AnalyticType3: domain.NullIfEmpty(&req.AnalyticType3),
	}
	if err := c.indicators.Update(ctx.Request().Context(), ind); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) DeleteIndicator(ctx echo.Context) error {
	if err := c.indicators.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
