package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

func (c *Controller) ListValues(ctx echo.Context) error {
	vs, err := c.values.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vs)
}

func (c *Controller) CreateValue(ctx echo.Context) error {
	req := new(domain.ValueIndicatorParams)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	v := req.Record()
	if err := c.values.Create(ctx.Request().Context(), v); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, v)
}

// GetValue принимает ключ в теле: в составном ключе даты и null-значимые
// аналитики, в path их не уложить.
func (c *Controller) GetValue(ctx echo.Context) error {
	req := new(domain.ValueIndicatorParams)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	v, err := c.values.GetByKey(ctx.Request().Context(), req.Record().Key())
	if err != nil {
		return err
	}
	if v == nil {
		return constants.ErrDBNotFound
	}

	return ctx.JSON(http.StatusOK, v)
}

func (c *Controller) UpdateValue(ctx echo.Context) error {
	req := new(domain.UpdateValueIndicatorRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	err := c.values.Update(ctx.Request().Context(), req.Old.Record().Key(), req.New.Record())
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) DeleteValue(ctx echo.Context) error {
	req := new(domain.DeleteValueIndicatorRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if err := c.values.Delete(ctx.Request().Context(), req.Record().Key()); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
