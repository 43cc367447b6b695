package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Configuration holds every runtime knob, loaded from environment
// variables with sane defaults for local development.
type Configuration struct {
	Server   ServerConfig   `envPrefix:""`
	Logging  LoggingConfig  `envPrefix:"LOG_"`
	Database DatabaseConfig `envPrefix:"MONGO_"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8000"`
}

type LoggingConfig struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	Production bool   `env:"JSON" envDefault:"false"`
}

type DatabaseConfig struct {
	URI     string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Name    string `env:"DB" envDefault:"citizenhub"`
	Timeout int    `env:"TIMEOUT_SECONDS" envDefault:"5"`
}

// Load parses the environment into a Configuration.
func Load() (*Configuration, error) {
	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LogConfig records the effective configuration at startup with
// credentials stripped from the Mongo URI.
func LogConfig(cfg *Configuration, logger *zap.Logger) {
	logger.Info("Application configuration",
		zap.String("port", cfg.Server.Port),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("mongo_uri", redactURI(cfg.Database.URI)),
		zap.String("mongo_db", cfg.Database.Name),
		zap.Int("mongo_timeout_seconds", cfg.Database.Timeout),
	)
}

func redactURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at == -1 {
		return uri
	}
	scheme := ""
	if idx := strings.Index(uri, "://"); idx != -1 {
		scheme = uri[:idx+3]
	}
	return scheme + "[REDACTED]" + uri[at:]
}
