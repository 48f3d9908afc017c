// main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"storefront/transactions/api"
	"storefront/transactions/appcontext"
	"storefront/transactions/config"
	"storefront/transactions/ingest"
	"storefront/transactions/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Create the logger instance at the very beginning.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on system env")
	}

	if err := run(logger); err != nil {
		logger.Error("Application terminated with an error", "error", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx := appcontext.WithLogger(context.Background(), logger)
	cfg := config.LoadConfig(ctx, logger)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	client, err := storage.ConnectToMongoDB(connectCtx, cfg.MongoURI)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		return fmt.Errorf("connection to MongoDB failed: %w", err)
	}

	defer func() {
		if deferErr := client.Disconnect(ctx); deferErr != nil {
			logger.Error("Error disconnecting from MongoDB", "error", deferErr)
		}
	}()

	repo := storage.NewMongoRepository(storage.NewMongoProvider(client, cfg.Database))

	// Relevance search requires the title+description text index.
	if err := repo.EnsureIndexes(connectCtx); err != nil {
		logger.Error("Failed to ensure indexes", "error", err)
		return fmt.Errorf("index setup failed: %w", err)
	}

	gateway := ingest.NewGateway(ingest.GatewayDependencies{
		Config: cfg,
		Repo:   repo,
	})

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", api.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(api.RequestID(logger))

	api.RegisterRoutes(r, repo, gateway)

	logger.Info("Server listening", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}
