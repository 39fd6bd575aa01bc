package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"harvestpro/entities"
	"harvestpro/pkg/farm/controller"
	"harvestpro/pkg/farm/service"
)

type FarmCtrl struct{ svc service.FarmService }

func New(svc service.FarmService) controller.FarmController { return &FarmCtrl{svc} }

type createReq struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	TotalAreaHa float64 `json:"total_area_ha"`
	ManagerID   uint    `json:"manager_id"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ManagerID == 0 {
		req.ManagerID = uid
	}
	f := &entities.Farm{Name: req.Name, Location: req.Location, TotalAreaHa: req.TotalAreaHa, ManagerID: req.ManagerID}
	out, err := h.svc.CreateFarm(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.svc.GetFarm(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	activeOnly := c.QueryParam("all") != "true"
	out, err := h.svc.Overview(activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Name        *string  `json:"name"`
		Location    *string  `json:"location"`
		TotalAreaHa *float64 `json:"total_area_ha"`
		ManagerID   *uint    `json:"manager_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, err := h.svc.UpdateFarm(uint(id), service.FarmPatch{
		Name: body.Name, Location: body.Location, TotalAreaHa: body.TotalAreaHa, ManagerID: body.ManagerID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Deactivate(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.DeactivateFarm(uint(id)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
