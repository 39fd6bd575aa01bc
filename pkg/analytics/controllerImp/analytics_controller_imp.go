package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"harvestpro/pkg/analytics/service"
)

type AnalyticsCtrl struct{ svc service.AnalyticsService }

func New(svc service.AnalyticsService) *AnalyticsCtrl { return &AnalyticsCtrl{svc} }

func (h *AnalyticsCtrl) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *AnalyticsCtrl) YearlyTrends(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > time.Now().Year()+1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad year"})
	}
	out, err := h.svc.YearlyTrends(year)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) FarmEfficiency(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.FarmEfficiency(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
