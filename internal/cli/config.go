package cli

import (
	"os"
	"strconv"
	"time"

	"github.com/Amund211/battlemetrics/internal/adapters/battlemetrics"
	"github.com/Amund211/battlemetrics/internal/constants"
)

// Config holds CLI configuration
type Config struct {
	APIURL   string
	Token    string
	Game     string
	PageSize int
	Output   string
	Timeout  time.Duration
	Verbose  bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		APIURL:   getEnvOrDefault("BATTLEMETRICS_API_URL", constants.BATTLEMETRICS_API_BASE_URL),
		Token:    os.Getenv("BATTLEMETRICS_TOKEN"),
		Game:     getEnvOrDefault("BATTLEMETRICS_GAME", battlemetrics.DefaultGame),
		PageSize: getIntEnvOrDefault("BATTLEMETRICS_PAGE_SIZE", battlemetrics.DefaultPageSize),
		Output:   "text",
		Timeout:  30 * time.Second,
		Verbose:  false,
	}
}

// "none" disables the game filter
func (c *Config) gameFilter() string {
	if c.Game == "none" {
		return ""
	}
	return c.Game
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnvOrDefault(key string, defaultVal int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return val
}
