package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
)

// Config settings shared by the calculator binaries
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string
	ClearScreen     bool
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file in the working directory and then the environment.
// It returns an error only for values that are present but malformed.
func Load() (Config, error) {
	// A missing .env file is normal; settings then come from the environment.
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "logfmt")),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.ClearScreen, err = strconv.ParseBool(getEnv("CLEAR_SCREEN", "true")); err != nil {
		return Config{}, fmt.Errorf("CLEAR_SCREEN: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	if _, err := levelOption(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.LogFormat != "logfmt" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// Logger builds the root logger writing to w in the configured format and level.
func (c Config) Logger(w io.Writer) log.Logger {
	var logger log.Logger
	if c.LogFormat == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	if allow, err := levelOption(c.LogLevel); err == nil {
		logger = level.NewFilter(logger, allow)
	}
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("LOG_LEVEL: unknown level %q", name)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
