package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"WEBSITE_PORT" envDefault:"4002"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// CheckoutURL replaces the checkout link from the content file when set.
	CheckoutURL string `env:"CHECKOUT_URL"`

	// RevealAnimations=false renders every section in its resting state.
	RevealAnimations bool `env:"REVEAL_ANIMATIONS" envDefault:"true"`

	ContentFile  string `env:"CONTENT_FILE"`
	ContentWatch bool   `env:"CONTENT_WATCH" envDefault:"false"`

	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads envFile (when present) into the environment and parses Config from it.
func Load(log *slog.Logger, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Warn(".env file not found, using environment and defaults", slog.String("path", envFile))
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Port = normalizePort(cfg.Port)

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Port),
		slog.Bool("reveal_animations", cfg.RevealAnimations),
		slog.String("content_file", cfg.ContentFile),
	)
	return cfg, nil
}

func normalizePort(port string) string {
	if port == "" {
		port = "4002"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	return port
}
