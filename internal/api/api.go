package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/HotelkaWants/ASMR-UK/internal/api/controller"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
	"github.com/HotelkaWants/ASMR-UK/internal/service/analytics"
	"github.com/HotelkaWants/ASMR-UK/internal/service/auth"
	"github.com/HotelkaWants/ASMR-UK/internal/service/dzos"
	"github.com/HotelkaWants/ASMR-UK/internal/service/indicators"
	"github.com/HotelkaWants/ASMR-UK/internal/service/loader"
	"github.com/HotelkaWants/ASMR-UK/internal/service/users"
	"github.com/HotelkaWants/ASMR-UK/internal/service/values"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{viper.GetString(constants.ViperKeyCORSOrigin)},
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	usersService := users.NewService(store)
	cntrl := controller.NewController(
		auth.NewService(usersService),
		usersService,
		dzos.NewService(store),
		analytics.NewService(store),
		indicators.NewService(store),
		values.NewService(store),
		loader.NewService(store),
	)

	api := svc.router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", cntrl.Login)
	authGroup.DELETE("/logout", cntrl.Logout)
	authGroup.GET("/me", cntrl.CurrentUser, AuthMiddleware)

	analyticTypes := api.Group("/analytic-types", AuthMiddleware)
	analyticTypes.GET("/list", cntrl.ListAnalyticTypes)
	analyticTypes.POST("/create", cntrl.CreateAnalyticType)
	analyticTypes.PUT("/:id", cntrl.UpdateAnalyticType)
	analyticTypes.DELETE("/:id", cntrl.DeleteAnalyticType)

	analyticsGroup := api.Group("/analytics", AuthMiddleware)
	analyticsGroup.GET("/list", cntrl.ListAnalytics)
	analyticsGroup.POST("/create", cntrl.CreateAnalytic)
	analyticsGroup.PUT("/:type_id/:id", cntrl.UpdateAnalytic)
	analyticsGroup.DELETE("/:type_id/:id", cntrl.DeleteAnalytic)

	indicatorsGroup := api.Group("/indicators", AuthMiddleware)
	indicatorsGroup.GET("/list", cntrl.ListIndicators)
	indicatorsGroup.POST("/create", cntrl.CreateIndicator)
	indicatorsGroup.PUT("/:id", cntrl.UpdateIndicator)
	indicatorsGroup.DELETE("/:id", cntrl.DeleteIndicator)

	valuesGroup := api.Group("/values", AuthMiddleware)
	valuesGroup.GET("/list", cntrl.ListValues)
	valuesGroup.POST("/create", cntrl.CreateValue)
	valuesGroup.POST("/get", cntrl.GetValue)
	valuesGroup.POST("/update", cntrl.UpdateValue)
	valuesGroup.POST("/delete", cntrl.DeleteValue)

	// Административные экраны: только роль "Администратор УК".
	dzosGroup := api.Group("/dzos", AuthMiddleware, AdminMiddleware)
	dzosGroup.GET("/list", cntrl.ListDZOs)
	dzosGroup.POST("/create", cntrl.CreateDZO)
	dzosGroup.PUT("/:id", cntrl.UpdateDZO)
	dzosGroup.DELETE("/:id", cntrl.DeleteDZO)

	usersGroup := api.Group("/users", AuthMiddleware, AdminMiddleware)
	usersGroup.GET("/list", cntrl.ListUsers)
	usersGroup.POST("/create", cntrl.CreateUser)
	usersGroup.PUT("/:id", cntrl.UpdateUser)
	usersGroup.DELETE("/:id", cntrl.DeleteUser)

	admin := api.Group("/admin", AuthMiddleware, AdminMiddleware)
	admin.POST("/load-csv", cntrl.LoadCSV)

	return svc, nil
}
