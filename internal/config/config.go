package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

const (
	defaultGame     = "rust"
	defaultPageSize = 100
	defaultPort     = "8080"
)

type Config struct {
	battleMetricsToken    string
	sentryDSN             string
	game                  string
	pageSize              int
	playtimeCacheTTL      time.Duration
	playtimeCacheCapacity uint64
	port                  string
	otelEnabled           bool
	env                   environment
}

func (c *Config) BattleMetricsToken() string {
	return c.battleMetricsToken
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

// Value of the game filter for organization server lookups. Empty when disabled.
func (c *Config) Game() string {
	return c.game
}

// Page size for organization server lookups. 0 when disabled.
func (c *Config) PageSize() int {
	return c.pageSize
}

func (c *Config) PlaytimeCacheTTL() time.Duration {
	return c.playtimeCacheTTL
}

func (c *Config) PlaytimeCacheCapacity() uint64 {
	return c.playtimeCacheCapacity
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) OTelEnabled() bool {
	return c.otelEnabled
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf(
		"Config{env: %s, game: %q, pageSize: %d, playtimeCacheTTL: %s, playtimeCacheCapacity: %d, port: %s, otelEnabled: %t, ...}",
		string(c.env),
		c.game,
		c.pageSize,
		c.playtimeCacheTTL,
		c.playtimeCacheCapacity,
		c.port,
		c.otelEnabled,
	)
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}
	invalidValue := func(key string, value string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s (%s)", ErrInvalidValue, key, value)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("BATTLEMETRICS_ENVIRONMENT")
	if !ok {
		return missingKey("BATTLEMETRICS_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "staging":
		env = staging
	case "development":
		env = development
	default:
		return invalidValue("BATTLEMETRICS_ENVIRONMENT", rawEnv)
	}

	if string(env) == "" {
		panic("logic error: env is empty")
	}

	battleMetricsToken := os.Getenv("BATTLEMETRICS_TOKEN")
	sentryDSN := os.Getenv("SENTRY_DSN")

	if env == production || env == staging {
		if battleMetricsToken == "" {
			return missingKey("BATTLEMETRICS_TOKEN")
		}
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
	}

	game := defaultGame
	if rawGame := os.Getenv("BATTLEMETRICS_GAME"); rawGame != "" {
		if rawGame == "none" {
			game = ""
		} else {
			game = rawGame
		}
	}

	pageSize := defaultPageSize
	if rawPageSize := os.Getenv("BATTLEMETRICS_PAGE_SIZE"); rawPageSize != "" {
		parsed, err := strconv.Atoi(rawPageSize)
		if err != nil || parsed < 0 {
			return invalidValue("BATTLEMETRICS_PAGE_SIZE", rawPageSize)
		}
		pageSize = parsed
	}

	var playtimeCacheTTL time.Duration
	if rawTTL := os.Getenv("BATTLEMETRICS_PLAYTIME_CACHE_TTL"); rawTTL != "" {
		parsed, err := time.ParseDuration(rawTTL)
		if err != nil || parsed < 0 {
			return invalidValue("BATTLEMETRICS_PLAYTIME_CACHE_TTL", rawTTL)
		}
		playtimeCacheTTL = parsed
	}

	var playtimeCacheCapacity uint64
	if rawCapacity := os.Getenv("BATTLEMETRICS_PLAYTIME_CACHE_CAPACITY"); rawCapacity != "" {
		parsed, err := strconv.ParseUint(rawCapacity, 10, 64)
		if err != nil {
			return invalidValue("BATTLEMETRICS_PLAYTIME_CACHE_CAPACITY", rawCapacity)
		}
		playtimeCacheCapacity = parsed
	}

	port := defaultPort
	if rawPort := os.Getenv("PORT"); rawPort != "" {
		if _, err := strconv.ParseUint(rawPort, 10, 16); err != nil {
			return invalidValue("PORT", rawPort)
		}
		port = rawPort
	}

	otelEnabled := false
	if rawOTelEnabled := os.Getenv("OTEL_ENABLED"); rawOTelEnabled != "" {
		parsed, err := strconv.ParseBool(rawOTelEnabled)
		if err != nil {
			return invalidValue("OTEL_ENABLED", rawOTelEnabled)
		}
		otelEnabled = parsed
	}

	return Config{
		battleMetricsToken:    battleMetricsToken,
		sentryDSN:             sentryDSN,
		game:                  game,
		pageSize:              pageSize,
		playtimeCacheTTL:      playtimeCacheTTL,
		playtimeCacheCapacity: playtimeCacheCapacity,
		port:                  port,
		otelEnabled:           otelEnabled,
		env:                   env,
	}, nil
}
