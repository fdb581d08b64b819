package config_test

import (
	"testing"
	"time"

	"github.com/Amund211/battlemetrics/internal/config"
	"github.com/stretchr/testify/require"
)

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

var requiredVariablesExceptEnv = []string{"BATTLEMETRICS_TOKEN", "SENTRY_DSN"}

var optionalVariables = []string{
	"BATTLEMETRICS_GAME",
	"BATTLEMETRICS_PAGE_SIZE",
	"BATTLEMETRICS_PLAYTIME_CACHE_TTL",
	"BATTLEMETRICS_PLAYTIME_CACHE_CAPACITY",
	"PORT",
	"OTEL_ENABLED",
}

func clearOptional(t *testing.T) {
	t.Helper()
	for _, variable := range optionalVariables {
		t.Setenv(variable, "")
	}
}

func TestGetConfig(t *testing.T) {
	compareConfig := func(token, sentryDSN string, env environment, conf config.Config) {
		t.Helper()
		require.Equal(t, token, conf.BattleMetricsToken())
		require.Equal(t, sentryDSN, conf.SentryDSN())
		require.Equal(t, env == production, conf.IsProduction())
		require.Equal(t, env == staging, conf.IsStaging())
		require.Equal(t, env == development, conf.IsDevelopment())
	}

	t.Run("ensure base environment is clean", func(t *testing.T) {
		t.Run("environment is missing", func(t *testing.T) {
			// BATTLEMETRICS_ENVIRONMENT is required, so this should fail
			_, err := config.ConfigFromEnv()
			require.ErrorIs(t, err, config.ErrMissingRequiredValue)
		})

		t.Run("development environment should be empty", func(t *testing.T) {
			t.Setenv("BATTLEMETRICS_ENVIRONMENT", "development")
			conf, err := config.ConfigFromEnv()
			require.NoError(t, err)
			compareConfig("", "", development, conf)
		})
	})

	t.Run("defaults", func(t *testing.T) {
		clearOptional(t)
		t.Setenv("BATTLEMETRICS_ENVIRONMENT", "development")

		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)

		require.Equal(t, "rust", conf.Game())
		require.Equal(t, 100, conf.PageSize())
		require.Equal(t, time.Duration(0), conf.PlaytimeCacheTTL())
		require.Equal(t, uint64(0), conf.PlaytimeCacheCapacity())
		require.Equal(t, "8080", conf.Port())
		require.False(t, conf.OTelEnabled())
	})

	t.Run("values are read correctly", func(t *testing.T) {
		for _, variable := range requiredVariablesExceptEnv {
			t.Setenv(variable, variable)
		}

		for _, env := range []environment{production, staging, development} {
			t.Run(string(env), func(t *testing.T) {
				t.Setenv("BATTLEMETRICS_ENVIRONMENT", string(env))
				conf, err := config.ConfigFromEnv()
				require.NoError(t, err)
				compareConfig("BATTLEMETRICS_TOKEN", "SENTRY_DSN", env, conf)
			})
		}
	})

	t.Run("optional values are read correctly", func(t *testing.T) {
		t.Setenv("BATTLEMETRICS_ENVIRONMENT", "development")
		t.Setenv("BATTLEMETRICS_GAME", "ark")
		t.Setenv("BATTLEMETRICS_PAGE_SIZE", "25")
		t.Setenv("BATTLEMETRICS_PLAYTIME_CACHE_TTL", "10m")
		t.Setenv("BATTLEMETRICS_PLAYTIME_CACHE_CAPACITY", "5000")
		t.Setenv("PORT", "3000")
		t.Setenv("OTEL_ENABLED", "true")

		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)

		require.Equal(t, "ark", conf.Game())
		require.Equal(t, 25, conf.PageSize())
		require.Equal(t, 10*time.Minute, conf.PlaytimeCacheTTL())
		require.Equal(t, uint64(5000), conf.PlaytimeCacheCapacity())
		require.Equal(t, "3000", conf.Port())
		require.True(t, conf.OTelEnabled())
		require.Contains(t, conf.NonSensitiveString(), "development")
	})

	t.Run("game filter and page size can be disabled", func(t *testing.T) {
		clearOptional(t)
		t.Setenv("BATTLEMETRICS_ENVIRONMENT", "development")
		t.Setenv("BATTLEMETRICS_GAME", "none")
		t.Setenv("BATTLEMETRICS_PAGE_SIZE", "0")

		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)
		require.Equal(t, "", conf.Game())
		require.Equal(t, 0, conf.PageSize())
	})

	t.Run("token is not in the non-sensitive string", func(t *testing.T) {
		clearOptional(t)
		t.Setenv("BATTLEMETRICS_ENVIRONMENT", "production")
		t.Setenv("BATTLEMETRICS_TOKEN", "super-secret-token")
		t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")

		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)
		require.NotContains(t, conf.NonSensitiveString(), "super-secret-token")
		require.NotContains(t, conf.NonSensitiveString(), "sentry.example.com")
	})

	t.Run("production and staging fail when missing variables", func(t *testing.T) {
		// Set all variables
		for _, variable := range requiredVariablesExceptEnv {
			t.Setenv(variable, "placeholder_value")
		}

		for _, env := range []environment{production, staging} {
			t.Run(string(env), func(t *testing.T) {
				t.Setenv("BATTLEMETRICS_ENVIRONMENT", string(env))
				for _, variable := range requiredVariablesExceptEnv {
					t.Run(variable, func(t *testing.T) {
						t.Setenv(variable, "")
						_, err := config.ConfigFromEnv()
						require.ErrorIs(t, err, config.ErrMissingRequiredValue)
					})
				}
			})
		}
	})

	t.Run("invalid environment", func(t *testing.T) {
		for _, env := range []string{"", "invalid", "my-env"} {
			t.Run(env, func(t *testing.T) {
				t.Setenv("BATTLEMETRICS_ENVIRONMENT", env)
				_, err := config.ConfigFromEnv()
				require.ErrorIs(t, err, config.ErrInvalidValue)
			})
		}
	})

	t.Run("invalid optional values", func(t *testing.T) {
		cases := []struct {
			variable string
			value    string
		}{
			{variable: "BATTLEMETRICS_PAGE_SIZE", value: "many"},
			{variable: "BATTLEMETRICS_PAGE_SIZE", value: "-1"},
			{variable: "BATTLEMETRICS_PLAYTIME_CACHE_TTL", value: "forever"},
			{variable: "BATTLEMETRICS_PLAYTIME_CACHE_TTL", value: "-1m"},
			{variable: "BATTLEMETRICS_PLAYTIME_CACHE_CAPACITY", value: "-5"},
			{variable: "PORT", value: "http"},
			{variable: "PORT", value: "70000"},
			{variable: "OTEL_ENABLED", value: "sometimes"},
		}
		for _, c := range cases {
			t.Run(c.variable+"="+c.value, func(t *testing.T) {
				clearOptional(t)
				t.Setenv("BATTLEMETRICS_ENVIRONMENT", "development")
				t.Setenv(c.variable, c.value)

				_, err := config.ConfigFromEnv()
				require.ErrorIs(t, err, config.ErrInvalidValue)
			})
		}
	})
}
