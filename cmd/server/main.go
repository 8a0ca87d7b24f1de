package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/bookform/bookform-api/internal/config"
	"github.com/bookform/bookform-api/internal/database"
	"github.com/bookform/bookform-api/internal/handler"
	"github.com/bookform/bookform-api/internal/queue"
	"github.com/bookform/bookform-api/internal/repository"
	"github.com/bookform/bookform-api/internal/router"
	"github.com/bookform/bookform-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepo(db, cfg.BcryptCost)
	loanRepo := repository.NewLoanRepo(db)

	authSvc := service.NewAuthService(userRepo)
	loginSvc := service.NewLoginService(userRepo)
	userSvc := service.NewUserService(userRepo)
	loanSvc := service.NewLoanService(loanRepo, userRepo)
	deleteLoanSvc := service.NewDeleteLoanService(loanRepo)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; login rate limiting disabled")
	}

	// Audit consumer runs for the life of the process and reconnects on
	// broker failures.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(loginSvc), config.LoadRateLimitConfig(), rdb)
	router.RegisterUsers(e, handler.NewUserHandler(authSvc, userSvc))
	router.RegisterLoans(e, handler.NewLoanHandler(authSvc, loanSvc, deleteLoanSvc))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
