package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

func (c *Controller) ListUsers(ctx echo.Context) error {
	us, err := c.users.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, us)
}

func (c *Controller) CreateUser(ctx echo.Context) error {
	req := new(domain.CreateUserRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	u, err := c.users.Create(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, u)
}

func (c *Controller) UpdateUser(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return constants.ErrBadRequest.Wrapf("идентификатор пользователя: %v", err)
	}

	req := new(domain.UpdateUserRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if err := c.users.Update(ctx.Request().Context(), id, req); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) DeleteUser(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return constants.ErrBadRequest.Wrapf("идентификатор пользователя: %v", err)
	}

	if err := c.users.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
