package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"harvestpro/entities"
	isvc "harvestpro/pkg/inventory/service"
)

type httpCtrl struct{ s isvc.Service }

func New(s isvc.Service) *httpCtrl { return &httpCtrl{s: s} }

// Register mounts the inventory routes. Pass the auth and role guards so
// the whole surface stays behind the inventory roles.
func (h *httpCtrl) Register(e *echo.Echo, mws ...echo.MiddlewareFunc) {
	g := e.Group("/inventory", mws...)
	g.GET("", h.list)
	g.POST("", h.add)
	g.POST("/:id/remove", h.remove)
	g.POST("/:id/adjust", h.adjust)
	g.POST("/expire-sweep", h.expireSweep)
	g.GET("/transactions", h.transactions)
	g.GET("/alerts", h.alerts)
	g.GET("/locations", h.listLocations)
	g.POST("/locations", h.addLocation)
}

type addReq struct {
	CropID       uint    `json:"crop_id"`
	LocationID   uint    `json:"location_id"`
	QuantityTons float64 `json:"quantity_tons"`
	QualityGrade string  `json:"quality_grade"`
	ExpiryDate   string  `json:"expiry_date"`
}

func (h *httpCtrl) add(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	var req addReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	in := isvc.AddItemInput{
		CropID: req.CropID, LocationID: req.LocationID,
		QuantityTons: req.QuantityTons, QualityGrade: req.QualityGrade, AddedBy: uid,
	}
	if req.ExpiryDate != "" {
		t, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad expiry_date"})
		}
		in.ExpiryDate = t
	}
	it, err := h.s.Add(in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, it)
}

type moveReq struct {
	QuantityTons float64 `json:"quantity_tons"`
	Notes        string  `json:"notes"`
}

func (h *httpCtrl) remove(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	var req moveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	it, err := h.s.Remove(uint(id), req.QuantityTons, uid, req.Notes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, it)
}

func (h *httpCtrl) adjust(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	var req moveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	it, err := h.s.Adjust(uint(id), req.QuantityTons, uid, req.Notes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, it)
}

func (h *httpCtrl) expireSweep(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	n, err := h.s.ExpireDue(time.Now(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"swept": n})
}

func (h *httpCtrl) list(c echo.Context) error {
	items, total, byCrop, err := h.s.ListItems()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":          items,
		"total_quantity": total,
		"crop_inventory": byCrop,
		"total_items":    len(items),
	})
}

func (h *httpCtrl) alerts(c echo.Context) error {
	low, expiring, err := h.s.Alerts(time.Now(), 14*24*time.Hour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"low_stock":        low,
		"expiring_batches": expiring,
	})
}

func (h *httpCtrl) transactions(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.s.Transactions(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) addLocation(c echo.Context) error {
	var l entities.StorageLocation
	if err := c.Bind(&l); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := h.s.AddLocation(&l); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *httpCtrl) listLocations(c echo.Context) error {
	out, err := h.s.ListLocations()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
