package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seatly/api/routes"
	"seatly/internal/checkout"
	"seatly/internal/sessions"
	"seatly/internal/shared/config"
	"seatly/internal/shared/constants"
	"seatly/internal/shared/database"
	"seatly/internal/shared/middleware"
	"seatly/pkg/logger"
	"seatly/pkg/ratelimit"

	"github.com/IBM/sarama"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()

	// Set Gin mode before building the logger so it picks text or JSON output
	gin.SetMode(cfg.GinMode)
	appLogger = logger.NewWithWriter(os.Stdout, cfg.LogLevel)
	logger.SetDefault(appLogger)

	appLogger.Info("Starting seatly",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("commit", GitCommit),
	)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("Failed to initialize databases", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Rate limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedis(), &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			PublicRequests:  cfg.RateLimit.PublicRequests,
			SeatMapRequests: cfg.RateLimit.SeatMapRequests,
			AdminRequests:   cfg.RateLimit.AdminRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
			KeyPrefix:       constants.KEY_RATE_LIMIT,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("seat_map_requests", cfg.RateLimit.SeatMapRequests),
			slog.Bool("redis_backed", db.GetRedis() != nil),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Checkout hand-off
	publisher := newCheckoutPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing checkout publisher", slog.Any("error", err))
		}
	}()

	appRouter := routes.NewRouter(cfg, db, publisher)
	router := setupRouter(appRouter, rateLimiter)

	// Release the parsed maps of sessions that expired in Redis or memory
	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	defer janitorCancel()
	janitor := sessions.NewJanitor(appRouter.SessionService(), cfg.Redis.SessionSweepInterval)
	janitor.Start(janitorCtx)
	defer janitor.Stop()

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_base", cfg.GetAPIBasePath()),
			slog.Bool("redis", db.GetRedis() != nil),
			slog.Bool("kafka", cfg.Kafka.Enabled),
			slog.Bool("rabbitmq", cfg.RabbitMQ.Enabled),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

// newCheckoutPublisher connects to Kafka or RabbitMQ when one is enabled. A
// broker that cannot be reached leaves checkout logging intents instead of
// failing startup.
func newCheckoutPublisher(cfg *config.Config) checkout.Publisher {
	appLogger := logger.GetDefault()

	switch {
	case cfg.Kafka.Enabled:
		publisher, err := checkout.NewKafkaPublisher(&checkout.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.CheckoutTopic,
			RetryMax:     cfg.Kafka.RetryMax,
			Timeout:      cfg.Kafka.Timeout,
			RequiredAcks: sarama.WaitForAll,
		})
		if err != nil {
			appLogger.Error("Failed to connect Kafka checkout publisher", slog.Any("error", err))
			break
		}
		appLogger.Info("✅ Kafka checkout publisher connected",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.Kafka.CheckoutTopic),
		)
		return publisher

	case cfg.RabbitMQ.Enabled:
		publisher, err := checkout.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.CheckoutQueue)
		if err != nil {
			appLogger.Error("Failed to connect RabbitMQ checkout publisher", slog.Any("error", err))
			break
		}
		appLogger.Info("✅ RabbitMQ checkout publisher connected",
			slog.String("queue", cfg.RabbitMQ.CheckoutQueue),
		)
		return publisher
	}

	appLogger.Info("No checkout broker connected, intents are only logged")
	return checkout.NewNoopPublisher()
}

func setupRouter(appRouter *routes.Router, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(middleware.RequestID(), middleware.RequestLogger(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	appRouter.SetupRoutes(engine)
	return engine
}
