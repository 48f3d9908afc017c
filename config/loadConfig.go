package config

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	defaultTimeoutSeconds = 30
	defaultMongoURI       = "mongodb://localhost:27017/storefront"
	defaultMongoHost      = "localhost"
	defaultMongoPort      = "27017"
	defaultDatabase       = "storefront"
	defaultListenAddr     = ":5000"
	defaultFeedURL        = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"
	envMongoURI           = "MONGO_URI"
	envMongoHost          = "MONGO_HOST"
	envMongoUser          = "MONGO_USER"
	envMongoPassword      = "MONGO_PASSWORD"
	envDatabase           = "MONGO_DB"
	envListenAddr         = "LISTEN_ADDR"
	envPort               = "PORT"
	envFeedURL            = "FEED_URL"
	envTimeoutSeconds     = "REQUEST_TIMEOUT_SECONDS"
)

// LoadConfig loads the application configuration from environment variables or uses default values.
func LoadConfig(ctx context.Context, logger *slog.Logger) *Config {
	mongoURI := os.Getenv(envMongoURI)
	mongoURI = formatMongoURI(ctx, mongoURI, logger)

	return &Config{
		MongoURI:       mongoURI,
		Database:       getDatabase(ctx, logger),
		ListenAddr:     getListenAddr(ctx, logger),
		FeedURL:        getFeedURL(ctx, logger),
		RequestTimeout: getRequestTimeout(ctx, logger),
	}
}

// Fetch the database name env var or set to a default value.
func getDatabase(ctx context.Context, logger *slog.Logger) string {
	database := os.Getenv(envDatabase)
	if database == "" {
		database = defaultDatabase
		logger.DebugContext(ctx, "Using default database name", "database", database)
	} else {
		logger.DebugContext(ctx, "Using database name from environment variable", "database", database)
	}

	return database
}

// Resolve the listen address. LISTEN_ADDR wins; a bare PORT is accepted for
// compatibility with the original deployment.
func getListenAddr(ctx context.Context, logger *slog.Logger) string {
	listenAddr := os.Getenv(envListenAddr)
	if listenAddr != "" {
		logger.DebugContext(ctx, "Using listen address from environment variable", "addr", listenAddr)
		return listenAddr
	}

	if port := os.Getenv(envPort); port != "" {
		listenAddr = ":" + port
		logger.DebugContext(ctx, "Using listen address from PORT environment variable", "addr", listenAddr)
		return listenAddr
	}

	logger.DebugContext(ctx, "Using default listen address", "addr", defaultListenAddr)
	return defaultListenAddr
}

// Fetch the upstream feed URL env var or set to a default value.
func getFeedURL(ctx context.Context, logger *slog.Logger) string {
	feedURL := os.Getenv(envFeedURL)
	if feedURL == "" {
		feedURL = defaultFeedURL
		logger.DebugContext(ctx, "Using default feed URL", "url", feedURL)
	} else {
		logger.DebugContext(ctx, "Using feed URL from environment variable", "url", feedURL)
	}

	return feedURL
}

// Fetch the request timeout env var or set to a default value.
func getRequestTimeout(ctx context.Context, logger *slog.Logger) time.Duration {
	timeoutStr := os.Getenv(envTimeoutSeconds)
	timeoutSeconds := defaultTimeoutSeconds
	if timeoutStr != "" {
		parsed, err := strconv.Atoi(timeoutStr)
		if err != nil || parsed <= 0 {
			logger.WarnContext(
				ctx,
				"Invalid value for REQUEST_TIMEOUT_SECONDS, using default",
				"value", timeoutStr,
				"default", defaultTimeoutSeconds,
				"error", err,
			)
		} else {
			timeoutSeconds = parsed
			logger.DebugContext(ctx, "Set request timeout from environment variable", "seconds", timeoutSeconds)
		}
	} else {
		logger.DebugContext(ctx, "Using default request timeout", "seconds", defaultTimeoutSeconds)
	}

	return time.Duration(timeoutSeconds) * time.Second
}

// formatMongoURI formats mongo settings to a url and return the result.
func formatMongoURI(
	ctx context.Context,
	mongoURI string,
	logger *slog.Logger,
) string {
	if mongoURI != "" {
		logger.DebugContext(ctx, "Using MongoDB URI from environment variable", "uri", mongoURI)
		return mongoURI
	}

	mongoHost := os.Getenv(envMongoHost)
	if mongoHost == "" {
		mongoHost = defaultMongoHost
		logger.DebugContext(ctx, "Using default MongoDB host", "host", mongoHost)
	} else {
		logger.DebugContext(ctx, "Using MongoDB host from environment variable", "host", mongoHost)
	}

	mongoUser := os.Getenv(envMongoUser)
	mongoPassword := os.Getenv(envMongoPassword)

	if mongoUser != "" && mongoPassword != "" {
		hostPort := net.JoinHostPort(mongoHost, defaultMongoPort)
		mongoURI = fmt.Sprintf(
			"mongodb://%s:%s@%s/%s?authSource=admin",
			mongoUser,
			mongoPassword,
			hostPort,
			defaultDatabase,
		)
		logger.DebugContext(ctx, "Created MongoDB URI from user, password, and host", "uri", mongoURI)
	} else {
		mongoURI = defaultMongoURI
		logger.DebugContext(ctx, "Using default MongoDB URI", "uri", mongoURI)
	}
	return mongoURI
}
