package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	ReadReplicaURL string // Optional; reporting reads use the primary when empty
	DBMaxConns     int32
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	// StoreTimeout bounds every individual store call.
	StoreTimeout time.Duration

	// NoShowGracePeriod is added to reservedFor to get the no-show cutoff.
	NoShowGracePeriod time.Duration
	NoShowSweepBatch  int

	// ReportLocation decides which calendar day a timestamp falls on in per-date buckets.
	ReportLocation *time.Location

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// UsesPostgres reports whether the primary DSN points at PostgreSQL rather than a sqlite file.
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PGSQL_READ_REPLICA_URL", "")
	viper.SetDefault("PGSQL_MAX_CONNS", 10)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "easyreserv")
	viper.SetDefault("STORE_TIMEOUT", "5s")
	viper.SetDefault("NO_SHOW_GRACE_PERIOD", "30m")
	viper.SetDefault("NO_SHOW_SWEEP_BATCH", 200)
	viper.SetDefault("REPORT_TIMEZONE", "UTC")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.ReadReplicaURL = viper.GetString("PGSQL_READ_REPLICA_URL")
	cfg.DBMaxConns = viper.GetInt32("PGSQL_MAX_CONNS")

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	var err error
	if cfg.StoreTimeout, err = parsePositiveDuration("STORE_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.NoShowGracePeriod, err = parseDuration("NO_SHOW_GRACE_PERIOD"); err != nil {
		return nil, err
	}
	if cfg.NoShowGracePeriod < 0 {
		return nil, fmt.Errorf("NO_SHOW_GRACE_PERIOD must not be negative, got %s", cfg.NoShowGracePeriod)
	}

	cfg.NoShowSweepBatch = viper.GetInt("NO_SHOW_SWEEP_BATCH")
	if cfg.NoShowSweepBatch <= 0 {
		cfg.NoShowSweepBatch = 200
		log.Printf("Warning: NO_SHOW_SWEEP_BATCH must be positive. Defaulting to %d.\n", cfg.NoShowSweepBatch)
	}

	tz := viper.GetString("REPORT_TIMEZONE")
	cfg.ReportLocation, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", tz, err)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics audit sink disabled.")
	}

	return cfg, nil
}

func parseDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}

func parsePositiveDuration(key string) (time.Duration, error) {
	d, err := parseDuration(key)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
