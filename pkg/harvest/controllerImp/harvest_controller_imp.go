package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"harvestpro/entities"
	croprepo "harvestpro/pkg/crop/repository"
	repo "harvestpro/pkg/harvest/repository"
)

type HarvestCtrl struct {
	repo  repo.HarvestRepository
	crops croprepo.CropRepository
}

func New(r repo.HarvestRepository, crops croprepo.CropRepository) *HarvestCtrl {
	return &HarvestCtrl{repo: r, crops: crops}
}

type harvestReq struct {
	HarvestDate  string  `json:"harvest_date"`
	QuantityTons float64 `json:"quantity_tons"`
	QualityGrade string  `json:"quality_grade"`
	Notes        string  `json:"notes"`
}

func (h *HarvestCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	fid, _ := strconv.Atoi(c.Param("id"))
	var req harvestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.QuantityTons <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity_tons must be positive"})
	}
	if !entities.ValidGrade(req.QualityGrade) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quality_grade must be A..D"})
	}
	if _, err := h.crops.FindField(uint(fid)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	d := time.Now()
	if req.HarvestDate != "" {
		dd, err := time.Parse("2006-01-02", req.HarvestDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad harvest_date"})
		}
		d = dd
	}
	rec := &entities.HarvestRecord{
		FieldID: uint(fid), HarvestDate: d, QuantityTons: req.QuantityTons,
		QualityGrade: req.QualityGrade, HarvestedBy: uid, Notes: req.Notes,
	}
	if err := h.repo.Create(rec); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *HarvestCtrl) ListByField(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListByField(uint(fid), 50)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Query powers the harvest tracking screen: filtered records plus the
// headline counters.
func (h *HarvestCtrl) Query(c echo.Context) error {
	var f repo.HarvestFilter
	if v, err := strconv.Atoi(c.QueryParam("field_id")); err == nil {
		f.FieldID = uint(v)
	}
	if v, err := strconv.Atoi(c.QueryParam("farm_id")); err == nil {
		f.FarmID = uint(v)
	}
	f.Grade = c.QueryParam("grade")
	if s := c.QueryParam("from"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			f.From = t
		}
	}
	if s := c.QueryParam("to"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			// to= covers the whole named day
			f.To = t.AddDate(0, 0, 1)
		}
	}
	records, err := h.repo.Query(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	total, err := h.repo.Count()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	tons, err := h.repo.SumTons()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	recent, err := h.repo.CountSince(weekAgo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"harvests":        records,
		"total_harvests":  total,
		"total_quantity":  tons,
		"recent_activity": recent,
	})
}
