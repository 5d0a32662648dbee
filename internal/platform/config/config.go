package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Client captures how the conformance client reaches the registration service.
type Client struct {
	// BaseURL is the service origin. Empty means "start an in-process mock".
	BaseURL        string
	RequestTimeout time.Duration
}

// Server captures mock registration service configuration.
type Server struct {
	Addr        string
	MetricsAddr string
	Environment string
	SeedFile    string
}

// Logging selects the slog handler and level.
type Logging struct {
	Level  string
	Format string
}

// LoadDotEnv loads variables from a .env file in the working directory when one
// exists. Variables already set in the environment win.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ClientFromEnv builds the conformance client config.
func ClientFromEnv() Client {
	return Client{
		BaseURL:        os.Getenv("BASE_URL"),
		RequestTimeout: durationEnv("REQUEST_TIMEOUT", 10*time.Second),
	}
}

// ServerFromEnv builds the mock server config so main stays lean.
func ServerFromEnv() Server {
	return Server{
		Addr:        stringEnv("REGISTRY_ADDR", ":8080"),
		MetricsAddr: stringEnv("METRICS_ADDR", ":9090"),
		Environment: stringEnv("ENVIRONMENT", "development"),
		SeedFile:    os.Getenv("SEED_FILE"),
	}
}

// LoggingFromEnv reads LOG_LEVEL and LOG_FORMAT.
func LoggingFromEnv() Logging {
	return Logging{
		Level:  stringEnv("LOG_LEVEL", "info"),
		Format: stringEnv("LOG_FORMAT", "json"),
	}
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
