package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"harvestpro/pkg/notify"
)

type NotifyCtrl struct{ svc *notify.Service }

func New(svc *notify.Service) *NotifyCtrl { return &NotifyCtrl{svc} }

func (h *NotifyCtrl) List(c echo.Context) error {
	d, err := h.svc.Current()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}
