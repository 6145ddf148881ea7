package main // Entry point for the booking service

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/BhanuPrakash2047/live-easy/internal/cache"      // Read-path cache
	"github.com/BhanuPrakash2047/live-easy/internal/client"     // HTTP client for the load service
	"github.com/BhanuPrakash2047/live-easy/internal/config"     // Internal config loader
	"github.com/BhanuPrakash2047/live-easy/internal/database"   // MySQL connection pool
	"github.com/BhanuPrakash2047/live-easy/internal/handler"    // HTTP handlers
	"github.com/BhanuPrakash2047/live-easy/internal/queue"      // RabbitMQ publisher
	"github.com/BhanuPrakash2047/live-easy/internal/repository" // Booking persistence
	"github.com/BhanuPrakash2047/live-easy/internal/router"     // Route registration
	"github.com/BhanuPrakash2047/live-easy/internal/service"    // Booking workflow
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load(true)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("booking: open database: %v", err)
	}
	defer db.Close()

	var bookingCache cache.Cache = cache.Noop{}
	if cc := config.LoadCacheConfig("booking"); cc.Enabled {
		if rdb := config.NewRedisClient(); rdb != nil {
			bookingCache = cache.NewRedis(rdb, cc.Prefix, cc.TTL)
		} else {
			log.Println("booking: redis unreachable, running without cache")
		}
	}

	var notifier queue.Notifier = queue.NopNotifier{}
	if pub, err := queue.NewPublisher(queue.BrokerURL()); err != nil {
		log.Printf("booking: rabbitmq unavailable, events disabled: %v", err)
	} else {
		notifier = pub
		defer pub.Close()
	}

	bookings := repository.NewBookingRepo(db)
	loads := client.NewHTTPLoadClient(cfg.LoadURL, cfg.ClientTimeout)
	svc := service.NewBookingService(bookings, loads, notifier, bookingCache)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e) // Health check
	router.RegisterBooking(e, handler.NewBookingHandler(svc))

	addr := ":" + cfg.Port
	log.Printf("booking service listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
