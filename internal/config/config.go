// Package config derives runtime configuration from the environment.
//
// Values are read once at startup; mid-run environment changes have no
// effect.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Defaults; the two origins are the ChatGPT clients the server is built for.
const (
	DefaultAddr          = ":8000"
	DefaultTasksFile     = "tasks.json"
	DefaultCompaniesFile = "data/companies.json"
	DefaultLogLevel      = "info"
	DefaultRateLimit     = 2.0
	DefaultRateBurst     = 20
)

var defaultAllowedOrigins = []string{"https://chatgpt.com", "https://chat.openai.com"}

// Config is the resolved runtime configuration.
type Config struct {
	Addr           string   // HTTP listen address (TP_ADDR)
	TasksFile      string   // task store persistence path (TP_TASKS_FILE)
	CompaniesFile  string   // company directory source path (TP_COMPANIES_FILE)
	AllowedOrigins []string // CORS origins, comma separated (TP_ALLOWED_ORIGINS)
	LogLevel       string   // logrus level name (TP_LOG_LEVEL)
	RateLimit      float64  // sustained requests per second (TP_RATE_LIMIT)
	RateBurst      int      // burst allowance (TP_RATE_BURST)
}

// FromEnv resolves configuration from TP_* environment variables, falling
// back to defaults for anything unset or unparseable.
func FromEnv() Config {
	cfg := Config{
		Addr:           envOr("TP_ADDR", DefaultAddr),
		TasksFile:      envOr("TP_TASKS_FILE", DefaultTasksFile),
		CompaniesFile:  envOr("TP_COMPANIES_FILE", DefaultCompaniesFile),
		AllowedOrigins: defaultAllowedOrigins,
		LogLevel:       envOr("TP_LOG_LEVEL", DefaultLogLevel),
		RateLimit:      DefaultRateLimit,
		RateBurst:      DefaultRateBurst,
	}

	if v := os.Getenv("TP_ALLOWED_ORIGINS"); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}
	if v := os.Getenv("TP_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimit = f
		}
	}
	if v := os.Getenv("TP_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateBurst = n
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
