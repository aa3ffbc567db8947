package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	AWS      AWSConfig
	Tables   TablesConfig
	Payments PaymentsConfig
	Storage  StorageConfig
	// Location anchors calendar days and months for dates sent without an
	// offset and for dashboard periods.
	Location *time.Location
}

type HTTPConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// AWSConfig describes DynamoDB connectivity. Endpoint is optional and points
// at DynamoDB Local during development.
type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type TablesConfig struct {
	Freights       string
	Clients        string
	Drivers        string
	Transactions   string
	BillingIntents string
}

type PaymentsConfig struct {
	AccessToken string
	Mock        bool
	Timeout     time.Duration
}

type StorageConfig struct {
	EvidenceDBPath string
}

const (
	defaultPort            = 8080
	defaultShutdownTimeout = 10 * time.Second
	defaultRegion          = "us-east-1"
	defaultGatewayTimeout  = 15 * time.Second
	defaultEvidenceDBPath  = "evidence.db"
	defaultTimezone        = "America/Sao_Paulo"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			ShutdownTimeout: defaultShutdownTimeout,
		},
		AWS: AWSConfig{
			Region:   valueOrDefault("AWS_REGION", defaultRegion),
			Endpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
			AccessKeyID:     valueOrDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: valueOrDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Tables: TablesConfig{
			Freights:       valueOrDefault("FREIGHTS_TABLE", "freights"),
			Clients:        valueOrDefault("CLIENTS_TABLE", "clients"),
			Drivers:        valueOrDefault("DRIVERS_TABLE", "drivers"),
			Transactions:   valueOrDefault("TRANSACTIONS_TABLE", "financial_transactions"),
			BillingIntents: valueOrDefault("BILLING_INTENTS_TABLE", "billing_intents"),
		},
		Payments: PaymentsConfig{
			AccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:        mockEnabled("PAYMENT_GATEWAY_MOCK") || mockEnabled("MERCADOPAGO_MOCK"),
			Timeout:     defaultGatewayTimeout,
		},
		Storage: StorageConfig{
			EvidenceDBPath: valueOrDefault("EVIDENCE_DB_PATH", defaultEvidenceDBPath),
		},
	}

	port, err := parsePort("SERVER_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	if cfg.HTTP.ShutdownTimeout, err = parseDuration("SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return Config{}, err
	}
	if cfg.Payments.Timeout, err = parseDuration("PAYMENT_GATEWAY_TIMEOUT", defaultGatewayTimeout); err != nil {
		return Config{}, err
	}

	tz := valueOrDefault("BUSINESS_TIMEZONE", defaultTimezone)
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return Config{}, fmt.Errorf("invalid BUSINESS_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func mockEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
