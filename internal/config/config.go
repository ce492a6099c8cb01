// Package config loads service configuration from an optional YAML
// file and environment variables. Secrets and limits are carried as
// explicit values into the components that need them; nothing reads
// ambient process state past startup.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultMaxBodySize is the largest inbound email accepted before
// decoding begins.
const DefaultMaxBodySize = 10 * 1024 * 1024

type Config struct {
	// HTTP
	HTTPAddr     string
	IngestSecret string
	MaxBodySize  int64

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Brokers
	AMQPURL  string
	RedisURL string

	// Aggregator worker pool
	NumWorkers int
	QueueSize  int
}

// Load builds configuration from an optional YAML file (CONFIG_PATH,
// with ${VAR} expansion) overlaid by environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:    ":8080",
		MaxBodySize: DefaultMaxBodySize,
		DBHost:      "localhost",
		DBPort:      "5432",
		NumWorkers:  4,
		QueueSize:   256,
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	overlay(&cfg.HTTPAddr, "HTTP_ADDR")
	overlay(&cfg.IngestSecret, "INGEST_SECRET")
	overlay(&cfg.DBHost, "DB_HOST")
	overlay(&cfg.DBPort, "DB_PORT")
	overlay(&cfg.DBUser, "DB_USER")
	overlay(&cfg.DBPassword, "DB_PASSWORD")
	overlay(&cfg.DBName, "DB_NAME")
	overlay(&cfg.AMQPURL, "AMQP_URL")
	overlay(&cfg.RedisURL, "REDIS_URL")
	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxBodySize = n
		}
	}

	if cfg.IngestSecret == "" {
		return nil, fmt.Errorf("ingest secret is not configured")
	}

	return cfg, nil
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
