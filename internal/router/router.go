// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/bookform/bookform-api/internal/config"
	"github.com/bookform/bookform-api/internal/handler"
	"github.com/bookform/bookform-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the login endpoint behind the Redis token bucket.
// Authentication for everything else happens inside the handlers through
// AuthService, so no JWT-style route middleware is involved.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1/auth")
	g.Use(middleware.NewTokenBucket(rlCfg, rdb))
	g.POST("/login", a.HandleLogin)
}

// RegisterUsers registers user administration endpoints. Each handler
// gates itself with AuthService.CheckAccessToken.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler) {
	e.POST("/v1/users", u.HandleCreate)
	e.GET("/v1/users", u.HandleList)
	e.DELETE("/v1/users/:id", u.HandleRemove)
}

// RegisterLoans registers loan endpoints.
func RegisterLoans(e *echo.Echo, l *handler.LoanHandler) {
	e.POST("/v1/loans", l.HandleCreate)
	e.GET("/v1/loans", l.HandleList)
	e.DELETE("/v1/loans/:id", l.HandleDelete)
}
