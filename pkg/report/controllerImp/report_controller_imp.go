package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"harvestpro/pkg/report"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct{ gen *report.Generator }

func New(gen *report.Generator) *ReportCtrl { return &ReportCtrl{gen} }

// Harvest serves the monthly harvest workbook. ?month=YYYY-MM selects the
// month, default current.
func (h *ReportCtrl) Harvest(c echo.Context) error {
	ref := time.Now()
	if m := c.QueryParam("month"); m != "" {
		t, err := time.Parse("2006-01", m)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad month, want YYYY-MM"})
		}
		ref = t
	}
	f, err := h.gen.HarvestMonthly(ref)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	name := fmt.Sprintf("harvest-%s.xlsx", ref.Format("2006-01"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (h *ReportCtrl) Inventory(c echo.Context) error {
	f, err := h.gen.InventorySnapshot()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	name := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
