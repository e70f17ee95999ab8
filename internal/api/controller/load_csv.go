package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

type loadCSVResponse struct {
	Table  string `json:"table"`
	Loaded int64  `json:"loaded"`
}

// LoadCSV принимает CSV-файл и дозагружает его строки в указанную таблицу.
func (c *Controller) LoadCSV(ctx echo.Context) error {
	table := ctx.FormValue("table")
	if table == "" {
		return constants.ErrBadRequest.Wrapf("не указана таблица")
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		return constants.ErrBadRequest.Wrapf("файл не получен: %v", err)
	}

	f, err := fh.Open()
	if err != nil {
		return constants.ErrBadRequest.Wrapf("файл не открывается: %v", err)
	}
	defer f.Close()

	n, err := c.loader.LoadCSV(ctx.Request().Context(), table, f)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, loadCSVResponse{Table: table, Loaded: n})
}
