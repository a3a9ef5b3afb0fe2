package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/pattarak/stockify/internal/analyst"
)

// Config holds all application configuration
type Config struct {
	BackendURL     string
	Symbol         string
	Locale         string
	LogLevel       string
	RequestTimeout int // seconds

	StorageBackend string // memory, redis, postgres
	RedisAddr      string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	MetricsPort string

	Policy analyst.Policy
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.BackendURL = getEnvWithDefault("BACKEND_URL", "http://localhost:5000")
	cfg.Symbol = getEnvWithDefault("SYMBOL", "AAPL")
	cfg.Locale = getEnvWithDefault("LOCALE", "en")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)

	cfg.StorageBackend = getEnvWithDefault("STORAGE_BACKEND", "memory")
	cfg.RedisAddr = getEnvWithDefault("REDIS_ADDR", "localhost:6379")

	cfg.DBHost = getEnvWithDefault("DB_HOST", "localhost")
	cfg.DBPort = getEnvWithDefault("DB_PORT", "5432")
	cfg.DBUser = getEnvWithDefault("DB_USER", "postgres")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = getEnvWithDefault("DB_NAME", "stockify")
	cfg.DBSSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	cfg.MetricsPort = getEnvWithDefault("METRICS_PORT", "9090")

	// Decision thresholds are policy constants; override only when tuning.
	p := analyst.DefaultPolicy()
	p.RSIBuyFloor = getEnvFloatWithDefault("RSI_BUY_FLOOR", p.RSIBuyFloor)
	p.RSIBuyCeiling = getEnvFloatWithDefault("RSI_BUY_CEILING", p.RSIBuyCeiling)
	p.RSIWeakBuyCeiling = getEnvFloatWithDefault("RSI_WEAK_BUY_CEILING", p.RSIWeakBuyCeiling)
	p.RSISellCeiling = getEnvFloatWithDefault("RSI_SELL_CEILING", p.RSISellCeiling)
	p.RSISellFloor = getEnvFloatWithDefault("RSI_SELL_FLOOR", p.RSISellFloor)
	p.RSIWeakSellFloor = getEnvFloatWithDefault("RSI_WEAK_SELL_FLOOR", p.RSIWeakSellFloor)
	p.RSINeutralLow = getEnvFloatWithDefault("RSI_NEUTRAL_LOW", p.RSINeutralLow)
	p.RSINeutralHigh = getEnvFloatWithDefault("RSI_NEUTRAL_HIGH", p.RSINeutralHigh)
	p.MACDFlatEpsilon = getEnvFloatWithDefault("MACD_FLAT_EPSILON", p.MACDFlatEpsilon)
	p.BuyLimitPct = getEnvFloatWithDefault("BUY_LIMIT_PCT", p.BuyLimitPct)
	p.StopLossPct = getEnvFloatWithDefault("STOP_LOSS_PCT", p.StopLossPct)
	p.TakeProfitPct = getEnvFloatWithDefault("TAKE_PROFIT_PCT", p.TakeProfitPct)
	p.ShortBouncePct = getEnvFloatWithDefault("SHORT_BOUNCE_PCT", p.ShortBouncePct)
	p.ShortStopPct = getEnvFloatWithDefault("SHORT_STOP_PCT", p.ShortStopPct)
	p.ShortTargetPct = getEnvFloatWithDefault("SHORT_TARGET_PCT", p.ShortTargetPct)
	p.StrongTrendPct = getEnvFloatWithDefault("STRONG_TREND_PCT", p.StrongTrendPct)
	cfg.Policy = p

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
