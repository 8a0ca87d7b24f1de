package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/service"
)

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Login *service.LoginService
}

func NewAuthHandler(login *service.LoginService) *AuthHandler {
	return &AuthHandler{Login: login}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /v1/auth/login: validates the credentials and
// returns a freshly rotated access token. Unknown email and wrong
// password answer identically.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}

	email, err := model.NewName(req.Email)
	if err != nil {
		return writeError(c, err, "Error al iniciar sesión.")
	}
	password, err := model.NewName(req.Password)
	if err != nil {
		return writeError(c, err, "Error al iniciar sesión.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	login, err := h.Login.Execute(ctx, email, password)
	if err != nil {
		return writeError(c, err, "Error al iniciar sesión.")
	}
	return c.JSON(http.StatusOK, login)
}
