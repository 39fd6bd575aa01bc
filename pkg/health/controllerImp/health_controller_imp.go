package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var started = time.Now()

type HealthCtrl struct {
	db     *gorm.DB
	dbPath string
}

func NewHealthCtrl(db *gorm.DB, dbPath string) *HealthCtrl {
	return &HealthCtrl{db: db, dbPath: dbPath}
}

// Health pings the store. A failing ping degrades the endpoint to 503
// while the process stays up.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	resp := echo.Map{
		"service":    "harvestpro",
		"store":      h.dbPath,
		"uptime_sec": int(time.Since(started).Seconds()),
		"checked_at": time.Now().Format(time.RFC3339),
	}
	if err := h.pingStore(ctx); err != nil {
		resp["status"] = "degraded"
		resp["store_error"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	resp["status"] = "ok"
	return c.JSON(http.StatusOK, resp)
}

func (h *HealthCtrl) pingStore(ctx context.Context) error {
	if h.db == nil {
		return errors.New("store not initialised")
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
