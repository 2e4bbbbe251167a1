// api/routes/router.go
package routes

import (
	"fmt"
	"net/http"
	"time"

	"seatly/internal/checkout"
	"seatly/internal/events"
	"seatly/internal/sessions"
	"seatly/internal/shared/config"
	"seatly/internal/shared/database"
	"seatly/internal/svgmap"
	"seatly/internal/venues"
	"seatly/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher checkout.Publisher

	// Built in SetupRoutes; later groups depend on earlier ones
	venueService   venues.Service
	eventService   events.Service
	sessionService sessions.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher checkout.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cache.NewService(db.GetRedis()),
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Venues first: events and seat maps read layouts through it.
		// Event routes hand the venue service its event source.
		r.setupVenueRoutes(api)
		r.setupEventRoutes(api)
		r.setupSessionRoutes(api)
	}
}

// SessionService returns the seat map service built by SetupRoutes
func (r *Router) SessionService() sessions.Service {
	return r.sessionService
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()

		var err error
		if err = r.db.HealthCheck(ctx); err == nil {
			if err = r.cache.Ping(ctx); err != nil {
				err = fmt.Errorf("redis ping failed: %w", err)
			}
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "seatly",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "seatly",
			"redis":     r.db.GetRedis() != nil,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	r.venueService = venues.NewService(venueRepo, r.cache)
	venueController := venues.NewController(r.venueService)

	venues.SetupVenueRoutes(rg, venueController)
}

func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	r.eventService = events.NewService(eventRepo, r.venueService, r.cache)
	r.venueService.SetEventSource(events.NewVenueEventAdapter(r.eventService))
	eventController := events.NewController(r.eventService)

	events.SetupEventRoutes(rg, eventController)
}

func (r *Router) setupSessionRoutes(rg *gin.RouterGroup) {
	r.sessionService = sessions.NewService(
		r.sessionStore(),
		r.eventService,
		r.venueService,
		r.publisher,
		sessions.Config{
			TTL: r.config.Redis.SessionTTL,
			Highlight: svgmap.Options{
				HighlightFill:   r.config.SeatMap.HighlightFill,
				HighlightStroke: r.config.SeatMap.HighlightStroke,
			},
		},
	)
	sessionController := sessions.NewController(r.sessionService)

	sessions.SetupSessionRoutes(rg, sessionController)
}

// sessionStore keeps sessions in Redis when it is connected so every
// instance sees the same selection
func (r *Router) sessionStore() sessions.Store {
	if rdb := r.db.GetRedis(); rdb != nil {
		return sessions.NewRedisStore(rdb)
	}
	return sessions.NewMemoryStore()
}
