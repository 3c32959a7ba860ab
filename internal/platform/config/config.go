package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Rate store backends.
const (
	RateStoreBolt     = "bolt"
	RateStorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimit          string

	// Accounting API
	AccountingAPIURL       string
	AccountingAPITimeout   time.Duration
	AccountingClientID     string
	AccountingClientSecret string
	AccountingTokenURL     string

	// Live quote provider
	LiveRateAPIURL   string
	LiveRateTimeout  time.Duration
	LiveRateCacheTTL time.Duration
	UseLiveRates     bool

	BaseCurrency  string
	LocalCurrency string
	Location      *time.Location

	// Rate store
	RateStore     string
	BoltPath      string
	DatabaseURL   string
	EnableDBCheck bool

	ReportLogoPath string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("ACCOUNTING_API_URL", "http://localhost:8443")
	v.SetDefault("ACCOUNTING_API_TIMEOUT", "30s")
	v.SetDefault("ACCOUNTING_CLIENT_ID", "")
	v.SetDefault("ACCOUNTING_CLIENT_SECRET", "")
	v.SetDefault("ACCOUNTING_TOKEN_URL", "")
	v.SetDefault("LIVE_RATE_API_URL", "https://api.exchangerate-api.com/v4/latest/USD")
	v.SetDefault("LIVE_RATE_TIMEOUT", "10s")
	v.SetDefault("LIVE_RATE_CACHE_TTL", "1h")
	v.SetDefault("USE_LIVE_RATES", true)
	v.SetDefault("BASE_CURRENCY", "USD")
	v.SetDefault("LOCAL_CURRENCY", "UGX")
	v.SetDefault("TIMEZONE", "Africa/Kampala")
	v.SetDefault("RATE_STORE", RateStoreBolt)
	v.SetDefault("BOLT_PATH", "data/mcurrency.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("REPORT_LOGO_PATH", "")
	v.AutomaticEnv()

	cfg := &Config{
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		RateLimit:              v.GetString("RATE_LIMIT"),
		AccountingAPIURL:       strings.TrimRight(v.GetString("ACCOUNTING_API_URL"), "/"),
		AccountingClientID:     v.GetString("ACCOUNTING_CLIENT_ID"),
		AccountingClientSecret: v.GetString("ACCOUNTING_CLIENT_SECRET"),
		AccountingTokenURL:     v.GetString("ACCOUNTING_TOKEN_URL"),
		LiveRateAPIURL:         v.GetString("LIVE_RATE_API_URL"),
		UseLiveRates:           v.GetBool("USE_LIVE_RATES"),
		BaseCurrency:           strings.ToUpper(v.GetString("BASE_CURRENCY")),
		LocalCurrency:          strings.ToUpper(v.GetString("LOCAL_CURRENCY")),
		RateStore:              strings.ToLower(v.GetString("RATE_STORE")),
		BoltPath:               v.GetString("BOLT_PATH"),
		DatabaseURL:            v.GetString("PGSQL_URL"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		ReportLogoPath:         v.GetString("REPORT_LOGO_PATH"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.AccountingAPITimeout = durationOrDefault(v, "ACCOUNTING_API_TIMEOUT", 30*time.Second)
	cfg.LiveRateTimeout = durationOrDefault(v, "LIVE_RATE_TIMEOUT", 10*time.Second)
	cfg.LiveRateCacheTTL = durationOrDefault(v, "LIVE_RATE_CACHE_TTL", time.Hour)

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to UTC.\n", v.GetString("TIMEZONE"))
		loc = time.UTC
	}
	cfg.Location = loc

	switch cfg.RateStore {
	case RateStoreBolt, RateStorePostgres:
	default:
		log.Printf("Warning: Invalid value for RATE_STORE ('%s'). Defaulting to %s.\n", cfg.RateStore, RateStoreBolt)
		cfg.RateStore = RateStoreBolt
	}
	if cfg.RateStore == RateStorePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: RATE_STORE is postgres but PGSQL_URL environment variable not set.")
	}

	if cfg.AccountingClientID != "" && cfg.AccountingTokenURL == "" {
		log.Println("Warning: ACCOUNTING_CLIENT_ID set without ACCOUNTING_TOKEN_URL. Requests will be unauthenticated.")
	}

	return cfg, nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
