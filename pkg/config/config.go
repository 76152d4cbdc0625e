package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Data layout
	DataDir       string
	DefaultLeague string
	Vendors       []string

	// Forecast pipeline
	History  HistoryConfig
	Forecast ForecastConfig

	// Scoring table (optional YAML override)
	ScoringConfigPath string

	// Database (history source = postgres)
	Database DatabaseConfig

	// Redis (vendor fetch cache)
	Redis RedisConfig

	// Vendor endpoints
	VendorFetch VendorFetchConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// HistoryConfig holds weekly history source configuration
type HistoryConfig struct {
	Source string // file, postgres
	Weeks  int    // trailing window size
}

// ForecastConfig holds series forecaster settings
type ForecastConfig struct {
	Model      string  // holt, trend
	MinHistory int     // 최소 히스토리 주 수
	Confidence float64 // 양측 구간 신뢰수준 (0~1)
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
	CacheTTL time.Duration
}

// VendorFetchConfig holds vendor feed endpoints
type VendorFetchConfig struct {
	ESPNURL     string
	FreeAPI1URL string
	RatePerSec  float64
	Timeout     time.Duration
}

// Supported values
const (
	HistorySourceFile     = "file"
	HistorySourcePostgres = "postgres"

	ForecastModelHolt  = "holt"
	ForecastModelTrend = "trend"
)

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		// Data layout
		DataDir:       getEnv("DATA_DIR", "data"),
		DefaultLeague: getEnv("DEFAULT_LEAGUE", "nfl"),
		Vendors:       getEnvAsList("VENDORS", []string{"espn", "freeapi1"}),

		History: HistoryConfig{
			Source: getEnv("HISTORY_SOURCE", HistorySourceFile),
			Weeks:  getEnvAsInt("HISTORY_WEEKS", 12),
		},

		Forecast: ForecastConfig{
			Model:      getEnv("FORECAST_MODEL", ForecastModelHolt),
			MinHistory: getEnvAsInt("FORECAST_MIN_HISTORY", 3),
			Confidence: getEnvAsFloat("FORECAST_CONFIDENCE", 0.80),
		},

		ScoringConfigPath: getEnv("SCORING_CONFIG", ""),

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 5),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			CacheTTL: getEnvAsDuration("REDIS_CACHE_TTL", "1h"),
		},

		VendorFetch: VendorFetchConfig{
			ESPNURL:     getEnv("VENDOR_ESPN_URL", "https://fantasy.espn.com"),
			FreeAPI1URL: getEnv("VENDOR_FREEAPI1_URL", "https://api.freeapi1.dev"),
			RatePerSec:  getEnvAsFloat("VENDOR_RATE_PER_SEC", 5),
			Timeout:     getEnvAsDuration("VENDOR_TIMEOUT", "30s"),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadFrom loads envFile (when set) and then reads configuration.
// Variables already present in the environment take precedence.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	return Load()
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	switch c.History.Source {
	case HistorySourceFile:
	case HistorySourcePostgres:
		// Database URL is required only for the postgres history source
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when HISTORY_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("HISTORY_SOURCE must be one of: file, postgres")
	}

	if c.History.Weeks < 1 {
		return fmt.Errorf("HISTORY_WEEKS must be >= 1")
	}

	if c.Forecast.Model != ForecastModelHolt && c.Forecast.Model != ForecastModelTrend {
		return fmt.Errorf("FORECAST_MODEL must be one of: holt, trend")
	}
	if c.Forecast.MinHistory < 2 {
		return fmt.Errorf("FORECAST_MIN_HISTORY must be >= 2")
	}
	if c.Forecast.Confidence <= 0 || c.Forecast.Confidence >= 1 {
		return fmt.Errorf("FORECAST_CONFIDENCE must be in (0, 1)")
	}

	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if c.DefaultLeague == "" {
		return fmt.Errorf("DEFAULT_LEAGUE must not be empty")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
