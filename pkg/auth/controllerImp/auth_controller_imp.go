package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"harvestpro/pkg/auth/controller"
	"harvestpro/pkg/auth/service"
	"harvestpro/pkg/middleware"
	repo "harvestpro/pkg/user/repository"
)

type authCtrl struct {
	svc   service.AuthService
	users repo.UserRepository
}

func NewAuthController(svc service.AuthService, users repo.UserRepository) controller.AuthController {
	return &authCtrl{svc: svc, users: users}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.svc.Register(req.Username, req.Email, req.FullName, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, u)
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	c.SetCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": u})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	u, err := h.users.FindByID(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, u)
}
