package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/dermrate/internal/adapters/cache"
	"github.com/zatekoja/dermrate/internal/adapters/database"
	"github.com/zatekoja/dermrate/internal/adapters/providers/catalog"
	"github.com/zatekoja/dermrate/internal/api/handlers"
	"github.com/zatekoja/dermrate/internal/api/routes"
	"github.com/zatekoja/dermrate/internal/application/services"
	"github.com/zatekoja/dermrate/internal/auth"
	"github.com/zatekoja/dermrate/internal/domain/providers"
	"github.com/zatekoja/dermrate/internal/infrastructure/clients/fakestore"
	"github.com/zatekoja/dermrate/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/dermrate/internal/infrastructure/clients/redis"
	"github.com/zatekoja/dermrate/internal/infrastructure/observability"
	"github.com/zatekoja/dermrate/pkg/config"
)

func main() {
	// .env is optional; real deployments pass environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Redis is optional; without it product lookups go straight to the
	// catalog API.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without product cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("Redis client initialized")
	}

	// Adapters
	userAdapter := database.NewUserAdapter(pgClient)
	doctorAdapter := database.NewDoctorAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)
	recommendationAdapter := database.NewRecommendationAdapter(pgClient)

	catalogProvider := catalog.NewFakestoreProvider(fakestore.NewClient(cfg.Catalog.BaseURL))
	if cacheProvider != nil {
		catalogProvider = catalog.NewCachedProvider(catalogProvider, cacheProvider, cfg.Catalog.CacheTTLSeconds, metrics)
	}

	// Services
	userService := services.NewUserService(userAdapter)
	doctorService := services.NewDoctorService(doctorAdapter, reviewAdapter)
	reviewService := services.NewReviewService(reviewAdapter, doctorAdapter)
	recommendationService := services.NewRecommendationService(recommendationAdapter, doctorAdapter, catalogProvider)
	analyticsService := services.NewAnalyticsService(doctorAdapter, reviewAdapter, recommendationAdapter, catalogProvider, metrics)

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, jwtManager)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, doctorService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, doctorService)

	router := routes.NewRouter(
		authHandler,
		doctorHandler,
		reviewHandler,
		recommendationHandler,
		analyticsHandler,
		jwtManager,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
