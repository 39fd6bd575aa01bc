package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"harvestpro/entities"
	repo "harvestpro/pkg/user/repository"
)

type UserCtrl struct{ repo repo.UserRepository }

func New(repo repo.UserRepository) *UserCtrl { return &UserCtrl{repo} }

func (h *UserCtrl) List(c echo.Context) error {
	users, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	total, active, err := h.repo.CountByActive()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"users":        users,
		"total_users":  total,
		"active_users": active,
	})
}

func (h *UserCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if _, err := h.repo.FindByID(uint(id)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if body.Role != nil {
		if !entities.ValidRole(*body.Role) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown role"})
		}
		if err := h.repo.UpdateRole(uint(id), *body.Role); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	if body.IsActive != nil {
		if err := h.repo.SetActive(uint(id), *body.IsActive); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	u, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}
