package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the service. It is built once at
// startup and passed by reference; nothing reads the environment afterwards.
type Config struct {
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	DBURL string `envconfig:"DB_URL" required:"true"`

	AccessTokenSecret  string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	RefreshTokenSecret string `envconfig:"REFRESH_TOKEN_SECRET" required:"true"`
	AccessExpiryMin    int    `envconfig:"ACCESS_TOKEN_EXPIRY" default:"15"`
	RefreshExpiryMin   int    `envconfig:"REFRESH_TOKEN_EXPIRY" default:"10080"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, errors.New("access and refresh token secrets must differ")
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs in production mode.
// Controls the Secure attribute on the refresh cookie.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}
