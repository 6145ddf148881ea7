package main // Entry point for the auth service

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/BhanuPrakash2047/live-easy/internal/config"     // Internal config loader
	"github.com/BhanuPrakash2047/live-easy/internal/database"   // MySQL connection pool
	"github.com/BhanuPrakash2047/live-easy/internal/handler"    // HTTP handlers
	"github.com/BhanuPrakash2047/live-easy/internal/repository" // User persistence
	"github.com/BhanuPrakash2047/live-easy/internal/router"     // Route registration
	"github.com/BhanuPrakash2047/live-easy/internal/token"      // JWT issue/verify
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load(true) // Auth owns the users table, so DB config is required

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("auth: open database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	codec := token.NewCodec(cfg.JWTSecret)
	auth := handler.NewAuthHandler(cfg, users, codec)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e) // Health check
	router.RegisterAuth(e, auth)

	addr := ":" + cfg.Port
	log.Printf("auth service listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
