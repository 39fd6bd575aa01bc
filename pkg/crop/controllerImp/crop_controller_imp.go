package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"harvestpro/entities"
	repo "harvestpro/pkg/crop/repository"
	farmrepo "harvestpro/pkg/farm/repository"
)

type CropCtrl struct {
	repo  repo.CropRepository
	farms farmrepo.FarmRepository
}

func New(repo repo.CropRepository, farms farmrepo.FarmRepository) *CropCtrl {
	return &CropCtrl{repo: repo, farms: farms}
}

type cropReq struct {
	Name          string  `json:"name"`
	Variety       string  `json:"variety"`
	ShelfLifeDays int     `json:"shelf_life_days"`
	MinStockTons  float64 `json:"min_stock_tons"`
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	cr := &entities.Crop{Name: req.Name, Variety: req.Variety, ShelfLifeDays: req.ShelfLifeDays, MinStockTons: req.MinStockTons}
	if cr.ShelfLifeDays <= 0 {
		cr.ShelfLifeDays = 180
	}
	if cr.MinStockTons <= 0 {
		cr.MinStockTons = 100
	}
	if err := h.repo.Create(cr); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type fieldReq struct {
	Name                string  `json:"name"`
	CropID              uint    `json:"crop_id"`
	AreaHa              float64 `json:"area_ha"`
	PlantingDate        string  `json:"planting_date"`
	ExpectedHarvestDate string  `json:"expected_harvest_date"`
	SupervisorID        uint    `json:"supervisor_id"`
}

func (h *CropCtrl) CreateField(c echo.Context) error {
	farmID, _ := strconv.Atoi(c.Param("id"))
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" || req.CropID == 0 || req.AreaHa <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name, crop_id and positive area_ha are required"})
	}
	if _, err := h.farms.FindByID(uint(farmID)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farm not found"})
	}
	if _, err := h.repo.FindByID(req.CropID); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown crop"})
	}
	pd, err := time.Parse("2006-01-02", req.PlantingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad planting_date"})
	}
	ehd, err := time.Parse("2006-01-02", req.ExpectedHarvestDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad expected_harvest_date"})
	}
	if ehd.Before(pd) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "expected_harvest_date before planting_date"})
	}
	f := &entities.Field{
		FarmID: uint(farmID), Name: req.Name, CropID: req.CropID, AreaHa: req.AreaHa,
		PlantingDate: pd, ExpectedHarvestDate: ehd, SupervisorID: req.SupervisorID,
	}
	if err := h.repo.CreateField(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *CropCtrl) ListFields(c echo.Context) error {
	farmID, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListFieldsByFarm(uint(farmID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
