package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultJWTAccessTTL    = "24h"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultListenAddr      = ":8080"
	defaultCurrency        = "usd"
	defaultFailWindow      = "10m"
	defaultShortLock       = "30s"
	defaultLongLock        = "5m"
	defaultQuoteTTL        = "30m"
	defaultLockThreshold   = 3
	defaultEarlyBirdDays   = 30
	defaultBulkTravelerMin = 5
)

// Config is the full runtime configuration, read from the environment with
// validated defaults. Prod-like environments must override the secrets.
type Config struct {
	AppEnv      string
	ListenAddr  string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration

	// Login throttling knobs. FailWindow is a sliding window: every failure
	// pushes the counter expiry out again.
	FailWindow    time.Duration
	ShortLock     time.Duration
	LongLock      time.Duration
	LockThreshold int

	// Pricing rule thresholds.
	EarlyBirdDays   int
	BulkTravelerMin int

	// Transient booking flow state TTL.
	QuoteTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StripeKey          string
	Currency           string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	if cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.FailWindow, err = parseDurationEnv("LOGIN_FAIL_WINDOW", defaultFailWindow); err != nil {
		return nil, err
	}
	if cfg.ShortLock, err = parseDurationEnv("LOGIN_SHORT_LOCK", defaultShortLock); err != nil {
		return nil, err
	}
	if cfg.LongLock, err = parseDurationEnv("LOGIN_LONG_LOCK", defaultLongLock); err != nil {
		return nil, err
	}
	if cfg.QuoteTTL, err = parseDurationEnv("BOOKING_QUOTE_TTL", defaultQuoteTTL); err != nil {
		return nil, err
	}
	cfg.LockThreshold = parseIntEnv("LOGIN_LOCK_THRESHOLD", defaultLockThreshold)
	cfg.EarlyBirdDays = parseIntEnv("PRICING_EARLY_BIRD_DAYS", defaultEarlyBirdDays)
	cfg.BulkTravelerMin = parseIntEnv("PRICING_BULK_TRAVELER_MIN", defaultBulkTravelerMin)

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = parseIntEnv("REDIS_DB", 0)

	cfg.StripeKey = strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY"))
	cfg.Currency = strings.ToLower(getEnv("CURRENCY", defaultCurrency))
	cfg.CheckoutSuccessURL = getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:8080/checkout/success")
	cfg.CheckoutCancelURL = getEnv("CHECKOUT_CANCEL_URL", "http://localhost:8080/checkout/cancel")

	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort = getEnv("SMTP_PORT", "587")
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.MailFrom = getEnv("MAIL_FROM", "no-reply@flyease.local")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.FailWindow <= 0 || cfg.ShortLock <= 0 || cfg.LongLock <= 0 {
		return fmt.Errorf("login throttle durations must be > 0")
	}
	if cfg.LockThreshold < 1 {
		return fmt.Errorf("LOGIN_LOCK_THRESHOLD must be >= 1")
	}
	if cfg.QuoteTTL <= 0 {
		return fmt.Errorf("BOOKING_QUOTE_TTL must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if strings.TrimSpace(cfg.JWTSecret) == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.StripeKey == "" {
			return fmt.Errorf("in prod/release STRIPE_SECRET_KEY must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
		return fallback
	}
	return n
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
