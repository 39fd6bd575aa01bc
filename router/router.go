package router

import (
	"github.com/labstack/echo/v4"

	"harvestpro/entities"
	"harvestpro/pkg/middleware"
)

func New(
	e *echo.Echo,
	secret string,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	farmCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Deactivate(echo.Context) error
	},
	cropCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		CreateField(echo.Context) error
		ListFields(echo.Context) error
	},
	harvestCtrl interface {
		Create(echo.Context) error
		ListByField(echo.Context) error
		Query(echo.Context) error
	},
	userCtrl interface {
		List(echo.Context) error
		Patch(echo.Context) error
	},
	analyticsCtrl interface {
		Dashboard(echo.Context) error
		YearlyTrends(echo.Context) error
		FarmEfficiency(echo.Context) error
	},
	reportCtrl interface {
		Harvest(echo.Context) error
		Inventory(echo.Context) error
	},
	notifyCtrl interface{ List(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.POST("/auth/register", authCtrl.Register)
	e.POST("/auth/login", authCtrl.Login)

	api := e.Group("", middleware.Auth(secret))
	api.GET("/whoami", authCtrl.WhoAmI)

	manage := middleware.RequireRole(entities.RoleAdmin, entities.RoleFarmManager)
	track := middleware.RequireRole(entities.RoleAdmin, entities.RoleFarmManager,
		entities.RoleFieldSupervisor, entities.RoleFieldWorker)

	api.GET("/farms", farmCtrl.List)
	api.GET("/farms/:id", farmCtrl.Get)
	api.POST("/farms", farmCtrl.Create, manage)
	api.PATCH("/farms/:id", farmCtrl.Patch, manage)
	api.DELETE("/farms/:id", farmCtrl.Deactivate, manage)

	api.GET("/crops", cropCtrl.List)
	api.POST("/crops", cropCtrl.Create, manage)
	api.GET("/farms/:id/fields", cropCtrl.ListFields)
	api.POST("/farms/:id/fields", cropCtrl.CreateField, manage)

	api.GET("/harvests", harvestCtrl.Query)
	api.GET("/fields/:id/harvests", harvestCtrl.ListByField)
	api.POST("/fields/:id/harvests", harvestCtrl.Create, track)

	api.GET("/dashboard", analyticsCtrl.Dashboard)
	api.GET("/analytics/trends/:year", analyticsCtrl.YearlyTrends)
	api.GET("/analytics/farms/:id/efficiency", analyticsCtrl.FarmEfficiency)

	api.GET("/reports/harvest.xlsx", reportCtrl.Harvest)
	api.GET("/reports/inventory.xlsx", reportCtrl.Inventory)

	api.GET("/notifications", notifyCtrl.List)

	api.GET("/users", userCtrl.List, manage)
	api.PATCH("/users/:id", userCtrl.Patch, manage)

	return e
}
