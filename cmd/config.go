package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"

	PaymentProviderMock   = "mock"
	PaymentProviderStripe = "stripe"
)

type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"postgres"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"tailorshop"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret string `env:"JWT_SECRET"`

	PaymentProvider     string `env:"PAYMENT_PROVIDER" envDefault:"mock"`
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	StripeAPIURL        string `env:"STRIPE_API_URL" envDefault:"https://api.stripe.com"`
	DefaultCurrency     string `env:"DEFAULT_CURRENCY" envDefault:"USD"`

	EscrowHoldPeriod      time.Duration `env:"ESCROW_HOLD_PERIOD" envDefault:"168h"`
	PaymentIntentTTL      time.Duration `env:"PAYMENT_INTENT_TTL" envDefault:"24h"`
	EscrowReleaseSchedule string        `env:"ESCROW_RELEASE_SCHEDULE" envDefault:"0 0 * * * *"`
	PaymentExpirySchedule string        `env:"PAYMENT_EXPIRY_SCHEDULE" envDefault:"0 */15 * * * *"`
}

// LoadConfig reads .env when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case StorageBackendPostgres, StorageBackendMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageBackendPostgres, StorageBackendMemory, c.StorageBackend)
	}
	switch c.PaymentProvider {
	case PaymentProviderMock, PaymentProviderStripe:
	default:
		return fmt.Errorf("PAYMENT_PROVIDER must be %q or %q, got %q", PaymentProviderMock, PaymentProviderStripe, c.PaymentProvider)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.EscrowHoldPeriod <= 0 || c.PaymentIntentTTL <= 0 {
		return errors.New("ESCROW_HOLD_PERIOD and PAYMENT_INTENT_TTL must be positive")
	}
	return nil
}

// DatabaseURL is the postgres:// form used by the migrator.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// DSN is the key=value form used by gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
