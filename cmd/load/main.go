package main // Entry point for the load service

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/BhanuPrakash2047/live-easy/internal/cache"      // Read-path cache
	"github.com/BhanuPrakash2047/live-easy/internal/config"     // Internal config loader
	"github.com/BhanuPrakash2047/live-easy/internal/database"   // MySQL connection pool
	"github.com/BhanuPrakash2047/live-easy/internal/handler"    // HTTP handlers
	"github.com/BhanuPrakash2047/live-easy/internal/queue"      // RabbitMQ publisher and consumer
	"github.com/BhanuPrakash2047/live-easy/internal/repository" // Load persistence
	"github.com/BhanuPrakash2047/live-easy/internal/router"     // Route registration
	"github.com/BhanuPrakash2047/live-easy/internal/service"    // Load business logic
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load(true)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("load: open database: %v", err)
	}
	defer db.Close()

	// The cache is strictly an accelerator: if Redis is unreachable or
	// caching is disabled, the service runs against the database alone.
	var loadCache cache.Cache = cache.Noop{}
	if cc := config.LoadCacheConfig("load"); cc.Enabled {
		if rdb := config.NewRedisClient(); rdb != nil {
			loadCache = cache.NewRedis(rdb, cc.Prefix, cc.TTL)
		} else {
			log.Println("load: redis unreachable, running without cache")
		}
	}

	// Events are best-effort.  A broker outage must not take the service
	// down, so a failed publisher setup degrades to a no-op notifier.
	var notifier queue.Notifier = queue.NopNotifier{}
	if pub, err := queue.NewPublisher(queue.BrokerURL()); err != nil {
		log.Printf("load: rabbitmq unavailable, events disabled: %v", err)
	} else {
		notifier = pub
		defer pub.Close()
	}

	// The status audit consumer tails load-status-changes into a log file.
	// It reconnects on its own and never blocks startup.
	go queue.StartStatusConsumer()

	loads := repository.NewLoadRepo(db)
	svc := service.NewLoadService(loads, notifier, loadCache)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e) // Health check
	router.RegisterLoad(e, handler.NewLoadHandler(svc))

	addr := ":" + cfg.Port
	log.Printf("load service listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
