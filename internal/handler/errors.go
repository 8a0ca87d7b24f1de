package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookform/bookform-api/internal/model"
)

// writeError maps a domain error Kind to an HTTP response. Unclassified
// errors never leak internal detail: they answer with the handler's
// generic fallback message.
func writeError(c echo.Context, err error, fallback string) error {
	switch model.KindOf(err) {
	case model.KindValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case model.KindAuth:
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case model.KindConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case model.KindNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
	}
}

// optString returns nil for an absent query parameter so optional value
// objects can distinguish "not given" from "given but empty".
func optString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
