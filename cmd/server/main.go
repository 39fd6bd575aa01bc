package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"harvestpro/config"
	"harvestpro/database"
	"harvestpro/router"

	"harvestpro/entities"
	"harvestpro/pkg/middleware"

	// Auth + users
	authCtrlImp "harvestpro/pkg/auth/controllerImp"
	authSvcImp "harvestpro/pkg/auth/serviceImp"
	userCtrlImp "harvestpro/pkg/user/controllerImp"
	userRepoImp "harvestpro/pkg/user/repositoryImp"

	// Farms + crops
	cropCtrlImp "harvestpro/pkg/crop/controllerImp"
	cropRepoImp "harvestpro/pkg/crop/repositoryImp"
	farmCtrlImp "harvestpro/pkg/farm/controllerImp"
	farmRepoImp "harvestpro/pkg/farm/repositoryImp"
	farmSvcImp "harvestpro/pkg/farm/serviceImp"

	// Harvest tracking
	harvCtrlImp "harvestpro/pkg/harvest/controllerImp"
	harvRepoImp "harvestpro/pkg/harvest/repositoryImp"

	// Inventory
	invCtrlImp "harvestpro/pkg/inventory/controllerImp"
	invRepoImp "harvestpro/pkg/inventory/repositoryImp"
	invSvcImp "harvestpro/pkg/inventory/serviceImp"

	// Analytics / reports / notifications
	analyticsCtrlImp "harvestpro/pkg/analytics/controllerImp"
	analyticsSvcImp "harvestpro/pkg/analytics/serviceImp"
	"harvestpro/pkg/notify"
	notifyCtrlImp "harvestpro/pkg/notify/controllerImp"
	"harvestpro/pkg/report"
	reportCtrlImp "harvestpro/pkg/report/controllerImp"

	// Health
	healthCtrlImp "harvestpro/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Repos
	users := userRepoImp.New(db)
	farms := farmRepoImp.New(db)
	crops := cropRepoImp.New(db)
	harvests := harvRepoImp.New(db)
	inv := invRepoImp.New(db)

	// 5) Services
	authSvc := authSvcImp.New(users, cfg.JWTSecret, time.Duration(cfg.TokenTTLHrs)*time.Hour, cfg.BcryptCost)
	farmSvc := farmSvcImp.NewFarmService(farms)
	invSvc := invSvcImp.New(inv, crops)
	analyticsSvc := analyticsSvcImp.New(farms, crops, harvests, inv)
	notifySvc := notify.New(crops, inv)
	reportGen := report.NewGenerator(harvests, inv)

	// 6) Controllers
	authCtrl := authCtrlImp.NewAuthController(authSvc, users)
	userCtrl := userCtrlImp.New(users)
	farmCtrl := farmCtrlImp.New(farmSvc)
	cropCtrl := cropCtrlImp.New(crops, farms)
	harvCtrl := harvCtrlImp.New(harvests, crops)
	analyticsCtrl := analyticsCtrlImp.New(analyticsSvc)
	reportCtrl := reportCtrlImp.New(reportGen)
	notifyCtrl := notifyCtrlImp.New(notifySvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.DBPath)

	// Inventory registers its own routes behind the inventory roles
	invCtrl := invCtrlImp.New(invSvc)
	invCtrl.Register(e,
		middleware.Auth(cfg.JWTSecret),
		middleware.RequireRole(entities.RoleAdmin, entities.RoleInventoryManager),
	)

	// 7) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		farmCtrl,
		cropCtrl,
		harvCtrl,
		userCtrl,
		analyticsCtrl,
		reportCtrl,
		notifyCtrl,
		hCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
