package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/eventhub/internal/config"
	"github.com/joshua-takyi/eventhub/internal/connect"
	"github.com/joshua-takyi/eventhub/internal/container"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/routes"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)
	logger.Info("Starting EventHub API server", "environment", cfg.Environment, "store", cfg.StoreDriver)

	loc, err := time.LoadLocation(cfg.CatalogLocation)
	if err != nil {
		logger.Error("Invalid CATALOG_LOCATION", "location", cfg.CatalogLocation, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	now := time.Now()

	var (
		events      models.EventStore
		mongoClient *mongo.Client
	)
	switch cfg.StoreDriver {
	case config.StoreMongo:
		mongoClient, err = connect.MongoDBConnect(ctx, cfg.MongoDBURI, cfg.MongoDBPassword)
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to MongoDB successfully", "database", cfg.MongoDBDatabase)
		events = models.MongodbNewRepo(mongoClient, cfg.MongoDBDatabase).Events()
	default:
		events = models.NewMemoryEventStore()
	}

	var (
		organizers  models.OrganizerRepo
		redisClient *redis.Client
	)
	if cfg.UsesRedis() {
		redisClient, err = connect.RedisConnect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to Redis successfully")
		redisRepo := models.NewRedisOrganizerRepo(redisClient)
		if cfg.SeedSampleData {
			if err := redisRepo.SeedIfEmpty(ctx, models.SampleOrganizers(now)); err != nil {
				logger.Error("Failed to seed organizers", "error", err)
				os.Exit(1)
			}
		}
		organizers = redisRepo
	} else {
		var seed []*models.OrganizerStats
		if cfg.SeedSampleData {
			seed = models.SampleOrganizers(now)
		}
		organizers = models.NewMemoryOrganizerRepo(seed...)
	}

	appContainer := container.NewContainer(cfg, logger, events, organizers, loc)

	if cfg.SeedSampleData {
		n, err := appContainer.Catalog.SeedIfEmpty(ctx, models.SampleEvents(now))
		if err != nil {
			logger.Error("Failed to seed events", "error", err)
			os.Exit(1)
		}
		if n > 0 {
			logger.Info("Seeded sample events", "count", n)
		}
	}

	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := connect.MongoDBDisconnect(shutdownCtx, mongoClient); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Error closing Redis client", "error", err)
		}
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
