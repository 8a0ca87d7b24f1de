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

// LoanHandler bundles dependencies for loan endpoints. Every operation
// requires a valid bearer token.
type LoanHandler struct {
	Auth   *service.AuthService
	Loans  *service.LoanService
	Delete *service.DeleteLoanService
}

func NewLoanHandler(auth *service.AuthService, loans *service.LoanService, del *service.DeleteLoanService) *LoanHandler {
	return &LoanHandler{Auth: auth, Loans: loans, Delete: del}
}

type createLoanReq struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Book   string `json:"book"`
}

// HandleCreate handles POST /v1/loans. New loans start open.
func (h *LoanHandler) HandleCreate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Auth.CheckAccessToken(ctx, c.Request().Header.Get("Authorization")); err != nil {
		return writeError(c, err, "Error al crear el préstamo.")
	}

	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cuerpo inválido"})
	}
	if req.ID == "" {
		req.ID = guuid.NewString()
	}

	loan, err := model.LoanFromPrimitives(model.LoanPrimitives{
		ID:     req.ID,
		UserID: req.UserID,
		Book:   req.Book,
		Status: true,
	})
	if err != nil {
		return writeError(c, err, "Error al crear el préstamo.")
	}

	if err := h.Loans.Create(ctx, loan); err != nil {
		return writeError(c, err, "Error al crear el préstamo.")
	}
	return c.JSON(http.StatusCreated, loan.Primitives())
}

// HandleList handles GET /v1/loans?user_id=&status=.
func (h *LoanHandler) HandleList(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Auth.CheckAccessToken(ctx, c.Request().Header.Get("Authorization")); err != nil {
		return writeError(c, err, "Error al listar los préstamos.")
	}

	userID, err := model.NewUuidOptional(optString(c.QueryParam("user_id")))
	if err != nil {
		return writeError(c, err, "Error al listar los préstamos.")
	}
	status, err := model.ParseBoolOptional(optString(c.QueryParam("status")))
	if err != nil {
		return writeError(c, err, "Error al listar los préstamos.")
	}

	loans, err := h.Loans.List(ctx, userID, status)
	if err != nil {
		return writeError(c, err, "Error al listar los préstamos.")
	}
	return c.JSON(http.StatusOK, loans)
}

// HandleDelete handles DELETE /v1/loans/:id. The caller must resolve to
// an authenticated user before the deletion runs; on auth failure the
// repository is never touched.
func (h *LoanHandler) HandleDelete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	actor, err := h.Auth.CheckAccessToken(ctx, c.Request().Header.Get("Authorization"))
	if err != nil {
		return writeError(c, err, "Error al eliminar el préstamo.")
	}

	id, err := model.NewUuid(c.Param("id"))
	if err != nil {
		return writeError(c, err, "Error al eliminar el préstamo.")
	}

	if err := h.Delete.Execute(ctx, id, actor); err != nil {
		return writeError(c, err, "Error al eliminar el préstamo.")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Préstamo eliminado correctamente"})
}
