package main // Entry point for the API gateway

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/BhanuPrakash2047/live-easy/internal/config"  // Internal config loader
	"github.com/BhanuPrakash2047/live-easy/internal/gateway" // Authentication gate and reverse proxies
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load(false)      // Gateway keeps no state, so no DB config needed
	e := echo.New()                // Create Echo instance
	e.HideBanner = true            // Keep startup logs to our own lines
	gateway.RegisterRoutes(e, cfg) // Mount the gate and per-service proxies

	addr := ":" + cfg.Port                                        // Address string with port
	log.Printf("gateway listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
