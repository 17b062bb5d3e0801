package main // Entry point package

import (
    "context" // Contexts for startup database work
    "log"     // Logging library
    "time"    // Startup timeouts

    "github.com/joho/godotenv"    // Loads .env files into the environment
    "github.com/labstack/echo/v4" // Echo web framework

    "flightinfo-server/internal/config"     // Internal config loader
    "flightinfo-server/internal/database"   // MySQL pool, migrations and seed data
    "flightinfo-server/internal/handler"    // HTTP handlers
    "flightinfo-server/internal/middleware" // Cache and rate limit middleware
    "flightinfo-server/internal/queue"      // RabbitMQ consumer
    "flightinfo-server/internal/repository" // DB repositories
    "flightinfo-server/internal/router"  // Route registration
    queue_publisher "flightinfo-server/internal/service" // Event publisher
)

func main() {
    _ = godotenv.Load() // Load .env if present; real env always wins

    cfg := config.Load() // Load environment config

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName) // Open MySQL pool and ping it
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()
    if err := database.Migrate(ctx, db); err != nil { // Create tables if missing
        log.Fatalf("migrate: %v", err)
    }
    if cfg.SeedData { // Seed the catalog on an empty database
        if err := database.Seed(ctx, db); err != nil {
            log.Fatalf("seed: %v", err)
        }
    }

    // Repositories over the shared pool.
    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    flights := repository.NewFlightRepo(db)
    locations := repository.NewLocationRepo(db)
    reservations := repository.NewReservationRepo(db)

    // Handlers.
    authH := handler.NewAuthHandler(cfg, users, tokens)
    flightH := handler.NewFlightHandler(flights)
    locationH := handler.NewLocationHandler(locations)
    reservationH := handler.NewReservationHandler(reservations, flights, queue_publisher.PublishReservationEvent)

    e := echo.New() // Create Echo instance

    // Redis-backed middleware; both degrade to no-ops when Redis is down.
    rdb := config.NewRedisClient()
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    router.RegisterRoutes(e)                                // Health check
    router.RegisterAuth(e, authH, cfg.JWTSecret)            // Auth endpoints
    router.RegisterPublic(e, flightH, locationH, cacheMW)   // Flight catalog and location directory
    router.RegisterReservations(e, reservationH, cfg.JWTSecret) // Reservation lifecycle

    // Consume lifecycle events into logs/; the consumer reconnects on its own.
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("queue consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port                                // Address string with port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}
