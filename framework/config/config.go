package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App     AppConfig
	Log     LogConfig
	HTTP    HTTPConfig
	Screens ScreensConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	URL   string
	Port  string
}

type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // text | json | logfmt
}

type HTTPConfig struct {
	ThrottleRPS     float64 // requests per second across all clients; 0 disables
	ThrottleBurst   int
	ShutdownTimeout time.Duration
}

type ScreensConfig struct {
	Capacity int // maximum mounted screens; 0 means unbounded
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "ExpenseShare"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			URL:   env("APP_URL", "http://localhost"),
			Port:  env("APP_PORT", "8000"),
		},
		Log: LogConfig{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", "text"),
		},
		HTTP: HTTPConfig{
			ThrottleRPS:     envFloat("HTTP_THROTTLE_RPS", 50),
			ThrottleBurst:   GetInt("HTTP_THROTTLE_BURST", 100),
			ShutdownTimeout: GetDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Screens: ScreensConfig{
			Capacity: GetInt("SCREENS_CAPACITY", 10000),
		},
	}
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetDuration returns a duration env value such as "5s" or "1m30s".
func GetDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
