package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"streamhub/database"
	"streamhub/internal/cache"
	"streamhub/internal/config"
	"streamhub/internal/http-api/handler"
	"streamhub/internal/http-api/middleware"
	"streamhub/internal/http-api/repository"
	"streamhub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Redis is optional; the catalog serves from the database when the
	// cache is down.
	movieCache, err := cache.NewMovieCache(cfg.RedisURL, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		logger.Warn("redis unavailable, catalog cache disabled", "error", err)
		movieCache = nil
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	movieRepo := repository.NewMovieRepo(db)
	mediaRepo := repository.NewMediaRepo(db)
	reviewRepo := repository.NewReviewRepository(db)
	historyRepo := repository.NewWatchHistoryRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	planRepo := repository.NewPlanRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	billingRepo := repository.NewBillingRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	movieService := service.NewMovieService(movieRepo, movieCache)
	mediaService := service.NewMediaService(mediaRepo, movieRepo)
	reviewService := service.NewReviewService(reviewRepo, movieRepo)
	historyService := service.NewWatchHistoryService(historyRepo, movieRepo)
	deviceService := service.NewDeviceService(deviceRepo, subscriptionRepo)
	subscriptionService := service.NewSubscriptionService(planRepo, subscriptionRepo, billingRepo)

	// Handlers
	accessTTL := int64(cfg.AccessTokenTTL.Seconds())
	authHandler := handler.NewAuthHandler(authService, accessTTL)
	movieHandler := handler.NewMovieHandler(movieService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	historyHandler := handler.NewWatchHistoryHandler(historyService)
	deviceHandler := handler.NewDeviceHandler(deviceService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	authenticated := middleware.AuthMiddleware(authService)

	// Auth
	authGroup := api.Group("/auth")
	{
		limited := authGroup.Group("", middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst))
		limited.POST("/register/", authHandler.Register)
		limited.POST("/login/", authHandler.Login)
		authGroup.POST("/refresh/", authHandler.RefreshToken)
		authGroup.POST("/revoke/", authHandler.RevokeToken)
		authGroup.GET("/me/", authenticated, authHandler.Me)
	}

	// Catalog: public reads, admin writes
	movies := api.Group("/movies")
	movieHandler.RegisterRoutes(movies)
	movieHandler.RegisterAdminRoutes(movies.Group("", authenticated, middleware.RequireAdmin()))

	media := api.Group("/media")
	mediaHandler.RegisterRoutes(media)
	mediaHandler.RegisterAdminRoutes(media.Group("", authenticated, middleware.RequireAdmin()))

	// Reviews: public reads, authenticated ownership-gated writes
	reviews := api.Group("/reviews")
	reviewHandler.RegisterRoutes(reviews)
	reviewHandler.RegisterAuthRoutes(reviews.Group("", authenticated))

	// Per-user resources
	historyHandler.RegisterRoutes(api.Group("/watch-history", authenticated))
	deviceHandler.RegisterRoutes(api.Group("/devices", authenticated))
	subscriptionHandler.RegisterSubscriptionRoutes(api.Group("/subscriptions", authenticated))
	subscriptionHandler.RegisterBillingRoutes(api.Group("/billing", authenticated))

	// Plans: public catalog, admin writes
	plans := api.Group("/subscription-plans")
	subscriptionHandler.RegisterPlanRoutes(plans)
	subscriptionHandler.RegisterPlanAdminRoutes(plans.Group("", authenticated, middleware.RequireAdmin()))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
