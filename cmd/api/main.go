package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/traveltours/traveltours-api/config"
	"github.com/traveltours/traveltours-api/internal/cache"
	"github.com/traveltours/traveltours-api/internal/handlers"
	"github.com/traveltours/traveltours-api/internal/middleware"
	"github.com/traveltours/traveltours-api/internal/repository"
	"github.com/traveltours/traveltours-api/internal/services"
	"github.com/traveltours/traveltours-api/pkg/logger"
	"github.com/traveltours/traveltours-api/pkg/mailer"
	"github.com/traveltours/traveltours-api/pkg/metrics"
	"github.com/traveltours/traveltours-api/pkg/profiling"
	"github.com/traveltours/traveltours-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the public API routes for a given router group
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, contactRateLimiter *middleware.RateLimiter,
	tourHandler *handlers.TourHandler,
	contactHandler *handlers.ContactHandler,
) {
	group.GET("/tours", generalRateLimiter.Middleware(), tourHandler.ListTours)
	group.GET("/tours/featured", generalRateLimiter.Middleware(), tourHandler.GetFeaturedTours)
	group.GET("/tours/meta", generalRateLimiter.Middleware(), tourHandler.GetCatalogMeta)
	group.GET("/tours/:slug", generalRateLimiter.Middleware(), tourHandler.GetTourBySlug)

	// Contact form triggers outbound email, so it gets a tight limit and a
	// small body cap
	group.POST("/contact", contactRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), contactHandler.SubmitContactForm)
}

// newMailer picks the outbound transport. Production requires SMTP; in
// development a missing SMTP host falls back to logging the message.
func newMailer(cfg *config.Config) mailer.Mailer {
	if cfg.Mail.Host == "" && cfg.IsDevelopment() {
		logger.Warn("SMTP_HOST not set - contact emails will be logged, not sent")
		return mailer.LogMailer{}
	}

	return mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		Timeout:  time.Duration(cfg.Mail.TimeoutSeconds) * time.Second,
	})
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Travel & Tours API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.CollectorEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling (optional)
	profilerStop, err := profiling.InitProfiler(profiling.Config{
		Enabled:               cfg.Profiling.Enabled,
		Endpoint:              cfg.Profiling.Endpoint,
		AppName:               cfg.Profiling.AppName,
		SampleTypes:           cfg.Profiling.SampleTypes,
		UploadIntervalSeconds: cfg.Profiling.UploadIntervalSeconds,
	}, cfg.Observability.ServiceName, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Load the tour catalog into the in-memory cache synchronously so the
	// container is healthy only once it can actually serve tours
	tourSource := repository.NewStaticTourSource(cfg.Catalog.DataPath)
	tourCache := cache.NewTourCache(tourSource)
	if err := tourCache.Initialize(context.Background()); err != nil {
		logger.Fatal("Failed to initialize tour catalog", zap.Error(err))
	}

	// Initialize services
	tourService := services.NewTourService(tourCache, cfg)
	contactService := services.NewContactService(tourCache, newMailer(cfg), cfg)

	// Initialize handlers
	tourHandler := handlers.NewTourHandler(tourService, cfg)
	contactHandler := handlers.NewContactHandler(contactService)
	healthHandler := handlers.NewHealthHandler(tourCache.IsReady)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only the frontend origins may call the API
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Rate limiters per endpoint class
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	contactRateLimiter := middleware.NewRateLimiter(1, 5)     // 1 req/sec, burst of 5 (prevent spam)

	// API routes
	api := router.Group("/api")
	// Utility endpoints (not versioned - operational endpoints)
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, generalRateLimiter, contactRateLimiter, tourHandler, contactHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
