package backoffice

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the client.
type Config struct {
	APIURL         string        `envconfig:"API_URL" default:"http://localhost:5000"`
	RequestTimeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
	TokenFile      string        `envconfig:"TOKEN_FILE"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}
	return &cfg, nil
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "backoffice", "token")
}
