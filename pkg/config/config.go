package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the config struct
var ErrParsingConfig = errors.New("config: failed to parse environment")

// Config holds everything the SDK needs to reach the backend and persist the
// session credential
type Config struct {
	// APIBaseURL is the backend root, including the API version prefix
	APIBaseURL string `env:"COMMERCEAI_API_BASE_URL" envDefault:"http://localhost:8000/api/v1"`

	// RequestTimeout applies to every backend call
	RequestTimeout time.Duration `env:"COMMERCEAI_REQUEST_TIMEOUT" envDefault:"30s"`

	// TokenFile is where the bearer credential is persisted between runs;
	// empty selects the default location under the user config dir
	TokenFile string `env:"COMMERCEAI_TOKEN_FILE"`

	// UserAgent overrides the HTTP User-Agent header when non-empty
	UserAgent string `env:"COMMERCEAI_USER_AGENT"`
}

var defaultEnvLoaded sync.Once

// Load reads the default .env file (if present) and parses the environment
// into a Config
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing one is not an error
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Useful at program start
// where the configuration is required to do anything at all.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}
