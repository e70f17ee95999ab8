package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

func (c *Controller) ListDZOs(ctx echo.Context) error {
	ds, err := c.dzos.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ds)
}

func (c *Controller) CreateDZO(ctx echo.Context) error {
	req := new(domain.CreateDZORequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	d := &domain.DZO{Name: req.Name, Address: req.Address}
	id, err := c.dzos.Create(ctx.Request().Context(), d)
	if err != nil {
		return err
	}
	d.ID = id

	return ctx.JSON(http.StatusCreated, d)
}

func (c *Controller) UpdateDZO(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return constants.ErrBadRequest.Wrapf("идентификатор ДЗО: %v", err)
	}

	req := new(domain.UpdateDZORequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	d := &domain.DZO{ID: id, Name: req.Name, Address: req.Address}
	if err := c.dzos.Update(ctx.Request().Context(), d); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) DeleteDZO(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return constants.ErrBadRequest.Wrapf("идентификатор ДЗО: %v", err)
	}

	if err := c.dzos.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
