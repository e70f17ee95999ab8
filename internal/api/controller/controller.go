package controller

import (
	"github.com/HotelkaWants/ASMR-UK/internal/service/analytics"
	"github.com/HotelkaWants/ASMR-UK/internal/service/auth"
	"github.com/HotelkaWants/ASMR-UK/internal/service/dzos"
	"github.com/HotelkaWants/ASMR-UK/internal/service/indicators"
	"github.com/HotelkaWants/ASMR-UK/internal/service/loader"
	"github.com/HotelkaWants/ASMR-UK/internal/service/users"
	"github.com/HotelkaWants/ASMR-UK/internal/service/values"
)

type Controller struct {
	auth       *auth.Service
	users      *users.Service
	dzos       *dzos.Service
	analytics  *analytics.Service
	indicators *indicators.Service
	values     *values.Service
	loader     *loader.Service
}

func NewController(
	auth *auth.Service,
	users *users.Service,
	dzos *dzos.Service,
	analytics *analytics.Service,
	indicators *indicators.Service,
	values *values.Service,
	loader *loader.Service,
) *Controller {
	return &Controller{
		auth:       auth,
		users:      users,
		dzos:       dzos,
		analytics:  analytics,
		indicators: indicators,
		values:     values,
		loader:     loader,
	}
}
