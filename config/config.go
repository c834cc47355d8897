// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"product-helium-addon/cache"
	"product-helium-addon/db"
	"product-helium-addon/logx"
)

// Environment represents the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// ParseEnvironment normalises the provided value into one of the known environments.
// Unknown values fall back to Development.
func ParseEnvironment(v string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(v))) {
	case Production:
		return Production
	case Staging:
		return Staging
	case Testing:
		return Testing
	default:
		return Development
	}
}

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ShopConfig holds storefront settings that are not part of the addon options
type ShopConfig struct {
	SiteID        int64         `split_words:"true" default:"1"`
	BaseCurrency  string        `split_words:"true" default:"USD"`
	CurrencyRates string        `split_words:"true"` // "EUR:0.92,COP:4100"; empty disables conversion
	DefaultLocale string        `split_words:"true" default:"en"`
	CartTTL       time.Duration `split_words:"true" default:"48h"`
}

// AppConfig defines all configurable parameters of the service
type AppConfig struct {
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	DB    db.Config
	Redis cache.Config
	Shop  ShopConfig
}

// Environment returns the parsed deployment environment
func (c *AppConfig) Environment() Environment {
	return ParseEnvironment(c.Env)
}

// Addr returns the listen address. PORT may arrive with a leading colon.
func (c *AppConfig) Addr() string {
	return "0.0.0.0:" + strings.TrimPrefix(c.Port, ":")
}

// Load reads .env outside production and processes the environment into AppConfig
func Load(envFile string) (*AppConfig, error) {
	// In production, variables should be set directly
	if ParseEnvironment(os.Getenv("ENV")) != Production && envFile != "" {
		// Overload so .env values win over the process environment
		if err := godotenv.Overload(envFile); err != nil {
			logx.Warn().Err(err).Str("path", envFile).Msg("⚠️  .env file not loaded, using system environment variables")
		} else {
			logx.Info().Str("path", envFile).Msg("✓ Loaded environment variables")
		}
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
