package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/blockfall/stc/internal/config"
)

// Config holds CLI configuration
type Config struct {
	ConfigPath string
	Seed       uint64
	Generator  string
	LogLevel   string
	LogFile    string
}

// DefaultConfig returns a Config with values from the environment. An
// optional .env file in the working directory is read first.
func DefaultConfig() *Config {
	_ = godotenv.Load() // No .env file is fine

	seed, err := strconv.ParseUint(os.Getenv("STC_SEED"), 10, 64)
	if err != nil {
		seed = 0
	}

	return &Config{
		ConfigPath: os.Getenv("STC_CONFIG"),
		Seed:       seed,
		LogLevel:   getEnvOrDefault("STC_LOG_LEVEL", "info"),
		LogFile:    os.Getenv("STC_LOG_FILE"),
	}
}

// Engine loads the engine configuration: the YAML file when one is set,
// the defaults otherwise, with command-line overrides applied on top
func (c *Config) Engine() (config.Config, error) {
	engine := config.Default()
	if c.ConfigPath != "" {
		loaded, err := config.Load(c.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		engine = loaded
	}

	if c.Generator != "" {
		engine.Generator = c.Generator
	}
	if err := engine.Validate(); err != nil {
		return config.Config{}, err
	}
	return engine, nil
}

// Logger builds the application logger. Records go to the log file when
// one is set and to fallback otherwise. The returned close function
// releases the log file.
func (c *Config) Logger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	handler := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "stc",
	})
	return slog.New(handler), closeFn, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
