package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

func (c *Controller) Login(ctx echo.Context) error {
	req := new(domain.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	user, token, err := c.auth.Login(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return ctx.JSON(http.StatusOK, domain.LoginResponse{User: user})
}

func (c *Controller) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) CurrentUser(ctx echo.Context) error {
	userID, ok := ctx.Get(constants.CtxKeyUserID).(int64)
	if !ok {
		return constants.ErrMissingAuthToken
	}

	user, err := c.users.Get(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return constants.ErrDBNotFound
	}

	return ctx.JSON(http.StatusOK, user)
}
