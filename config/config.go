package config

import (
	"time"
)

// Config holds the application configuration.
type Config struct {
	MongoURI       string
	Database       string
	ListenAddr     string
	FeedURL        string
	RequestTimeout time.Duration
}
