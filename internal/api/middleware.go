package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/utils"
)

// RequestIDMiddleware кладёт идентификатор запроса в контекст для логгера.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := uuid.NewString()
		ctx.Response().Header().Set(echo.HeaderXRequestID, reqID)

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(context.WithValue(req.Context(), constants.CtxKeyRequestID, reqID))) //nolint:staticcheck

		return next(ctx)
	}
}

// AuthMiddleware разбирает сессионный токен из cookie и прокидывает
// идентификатор и роль вошедшего в контекст запроса.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthToken
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)
		ctx.Set(constants.CtxKeyUserRole, token.Role)

		req := ctx.Request()
		reqCtx := context.WithValue(req.Context(), constants.CtxKeyUserID, token.UserID) //nolint:staticcheck
		ctx.SetRequest(req.WithContext(reqCtx))

		return next(ctx)
	}
}

// AdminMiddleware пускает дальше только привилегированную роль.
func AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		role, ok := ctx.Get(constants.CtxKeyUserRole).(string)
		if !ok || role != constants.RoleAdminUK {
			return constants.ErrForbidden
		}

		return next(ctx)
	}
}
