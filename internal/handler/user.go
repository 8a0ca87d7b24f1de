package handler

import (
	"context"
	"net/http"
	"time"

	guuid "github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/service"
)

// UserHandler bundles dependencies for user administration endpoints.
// Every operation here requires a valid bearer token.
type UserHandler struct {
	Auth  *service.AuthService
	Users *service.UserService
}

func NewUserHandler(auth *service.AuthService, users *service.UserService) *UserHandler {
	return &UserHandler{Auth: auth, Users: users}
}

type createUserReq struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Status   bool   `json:"status"`
	Password string `json:"password"`
}

// HandleCreate handles POST /v1/users. The id may be supplied by the
// client; when absent a new one is generated.
func (h *UserHandler) HandleCreate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Auth.CheckAccessToken(ctx, c.Request().Header.Get("Authorization")); err != nil {
		return writeError(c, err, "Error al crear el usuario.")
	}

	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}
	if req.ID == "" {
		req.ID = guuid.NewString()
	}

	user, err := model.UserFromPrimitives(model.UserPrimitives{
		ID:     req.ID,
		Name:   req.Name,
		Status: req.Status,
		Email:  req.Email,
	})
	if err != nil {
		return writeError(c, err, "Error al crear el usuario.")
	}
	password, err := model.NewName(req.Password)
	if err != nil {
		return writeError(c, err, "Error al crear el usuario.")
	}

	if err := h.Users.Create(ctx, user, password); err != nil {
		return writeError(c, err, "Error al crear el usuario.")
	}
	return c.JSON(http.StatusCreated, user.Primitives())
}

// HandleList handles GET /v1/users?name=&email=&status=. Name and email
// are optional fragments; status defaults to active.
func (h *UserHandler) HandleList(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Auth.CheckAccessToken(ctx, c.Request().Header.Get("Authorization")); err != nil {
		return writeError(c, err, "Error al listar los usuarios.")
	}

	name, err := model.NewNameOptional(optString(c.QueryParam("name")))
	if err != nil {
		return writeError(c, err, "Error al listar los usuarios.")
	}
	email, err := model.NewNameOptional(optString(c.QueryParam("email")))
	if err != nil {
		return writeError(c, err, "Error al listar los usuarios.")
	}
	status := model.NewBool(true)
	if raw := c.QueryParam("status"); raw != "" {
		status, err = model.ParseBool(raw)
		if err != nil {
			return writeError(c, err, "Error al listar los usuarios.")
		}
	}

	users, err := h.Users.Search(ctx, name, email, status)
	if err != nil {
		return writeError(c, err, "Error al listar los usuarios.")
	}
	return c.JSON(http.StatusOK, users)
}

// HandleRemove handles DELETE /v1/users/:id (soft delete).
func (h *UserHandler) HandleRemove(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Auth.CheckAccessToken(ctx, c.Request().Header.Get("Authorization")); err != nil {
		return writeError(c, err, "Error al eliminar el usuario.")
	}

	id, err := model.NewUuid(c.Param("id"))
	if err != nil {
		return writeError(c, err, "Error al eliminar el usuario.")
	}

	if err := h.Users.Remove(ctx, id); err != nil {
		return writeError(c, err, "Error al eliminar el usuario.")
	}
	return c.NoContent(http.StatusNoContent)
}
