package api

import (
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

// Binder разбирает JSON-тела через sonic, остальное отдаёт штатному биндеру
// echo (path- и query-параметры).
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i any, ctx echo.Context) error {
	req := ctx.Request()
	if req.ContentLength != 0 && strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return constants.ErrBadRequest.Wrapf("чтение тела запроса: %v", err)
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return constants.ErrBadRequest.Wrapf("разбор JSON: %v", err)
		}
		return b.fallback.BindPathParams(ctx, i)
	}
	return b.fallback.Bind(i, ctx)
}
