package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML structure for unmarshalling.
type fileConfig struct {
	HTTP struct {
		Addr         string `yaml:"addr"`
		IngestSecret string `yaml:"ingest_secret"`
		MaxBodySize  int64  `yaml:"max_body_size"`
	} `yaml:"http"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	AMQP struct {
		URL string `yaml:"url"`
	} `yaml:"amqp"`
	Redis struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`
	Aggregator struct {
		Workers   int `yaml:"workers"`
		QueueSize int `yaml:"queue_size"`
	} `yaml:"aggregator"`
}

// loadFile reads a YAML config file, expanding ${VAR} references before
// parsing so secrets can stay in the environment.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw fileConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return fmt.Errorf("parse config YAML: %w", err)
	}

	setIfNonEmpty(&c.HTTPAddr, raw.HTTP.Addr)
	setIfNonEmpty(&c.IngestSecret, raw.HTTP.IngestSecret)
	if raw.HTTP.MaxBodySize > 0 {
		c.MaxBodySize = raw.HTTP.MaxBodySize
	}
	setIfNonEmpty(&c.DBHost, raw.Database.Host)
	setIfNonEmpty(&c.DBPort, raw.Database.Port)
	setIfNonEmpty(&c.DBUser, raw.Database.User)
	setIfNonEmpty(&c.DBPassword, raw.Database.Password)
	setIfNonEmpty(&c.DBName, raw.Database.Name)
	setIfNonEmpty(&c.AMQPURL, raw.AMQP.URL)
	setIfNonEmpty(&c.RedisURL, raw.Redis.URL)
	if raw.Aggregator.Workers > 0 {
		c.NumWorkers = raw.Aggregator.Workers
	}
	if raw.Aggregator.QueueSize > 0 {
		c.QueueSize = raw.Aggregator.QueueSize
	}

	return nil
}

func setIfNonEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
