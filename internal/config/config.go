package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENV" default:"production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Backend API settings
	APIBaseURL         string        `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`
	UseMockData        bool          `envconfig:"USE_MOCK_DATA" default:"false"`
	TokenRefreshBuffer time.Duration `envconfig:"TOKEN_REFRESH_BUFFER" default:"30s"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	// Frontend settings surfaced to clients
	SiteURL              string `envconfig:"SITE_URL" default:"http://localhost:3000"`
	StripePublishableKey string `envconfig:"STRIPE_PUBLISHABLE_KEY"`

	// Session persistence. SessionDBDriver is "pgx" or "sqlite"; when empty the
	// JSON file at SessionFile is used.
	SessionFile     string `envconfig:"SESSION_FILE" default:".vu/session.json"`
	SessionDBDriver string `envconfig:"SESSION_DB_DRIVER"`
	SessionDBDSN    string `envconfig:"SESSION_DB_DSN"`

	// Gateway server settings
	Port           string   `envconfig:"PORT" default:"8081"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
