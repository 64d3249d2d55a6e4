package cli

import (
	"context"
	"time"

	"github.com/morikuni/failure/v2"
	"github.com/sethvargo/go-envconfig"

	"github.com/fieldobs/modisub/modis"
)

// Config holds the environment configuration for the CLI
type Config struct {
	// BaseURL overrides the service entry point
	BaseURL string `env:"MODIS_BASE_URL,default=https://modis.ornl.gov/rst/api/v1/"`

	// Timeout bounds each request; zero leaves the transport default
	Timeout time.Duration `env:"MODIS_TIMEOUT"`

	// Email and UID are merged into subset search terms when the
	// corresponding flags are not given
	Email string `env:"MODIS_EMAIL"`
	UID   string `env:"MODIS_UID"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, failure.Wrap(err)
	}
	return &cfg, nil
}

// Client builds a service client from the configuration
func (cfg *Config) Client() *modis.Client {
	opts := []modis.Option{modis.WithBaseURL(cfg.BaseURL)}
	if cfg.Timeout > 0 {
		opts = append(opts, modis.WithTimeout(cfg.Timeout))
	}
	return modis.New(opts...)
}

// newClient loads the environment configuration and builds a client from it
func newClient(ctx context.Context) (*modis.Client, *Config, error) {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	return cfg.Client(), cfg, nil
}
