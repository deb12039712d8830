package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	// URL, when set, overrides the individual connection fields.
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	// MigrateOnStart applies pending schema migrations before serving.
	MigrateOnStart bool
}

type KafkaConfig struct {
	Brokers       []string
	EventsTopic   string
	RescoreTopic  string
	ConsumerGroup string
	TLS           bool
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string
	// RelayInterval is how often the outbox relay polls for unpublished events.
	RelayInterval time.Duration
	RelayBatch    int
}

// Enabled reports whether a broker is configured.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

type AuthConfig struct {
	JWTSecret        string
	JWTPublicKeyFile string
	Issuer           string
}

type TLSConfig struct {
	CertFile     string
	KeyFile      string
	ClientCAFile string
}

type TelemetryConfig struct {
	OTLPEndpoint string
	OTLPInsecure bool
	SampleRatio  float64
}

type Config struct {
	GRPCPort int
	HTTPPort int
	// GRPCReflection registers the reflection service for development tooling.
	GRPCReflection bool
	DB             DatabaseConfig
	Kafka          KafkaConfig
	Auth           AuthConfig
	TLS            TLSConfig
	Telemetry      TelemetryConfig
	LogLevel       string
	LogFormat      string
	ServiceName    string
}

// Validate reports every missing or inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.DB.URL == "" && c.DB.Password == "" {
		errs = append(errs, errors.New("DATABASE_URL or DB_PASSWORD environment variable is required"))
	}
	if c.Auth.JWTSecret == "" && c.Auth.JWTPublicKeyFile == "" {
		errs = append(errs, errors.New("JWT_SECRET or JWT_PUBLIC_KEY_FILE environment variable is required"))
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		errs = append(errs, errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together"))
	}
	if c.Kafka.Enabled() && c.Kafka.EventsTopic == "" {
		errs = append(errs, errors.New("KAFKA_EVENTS_TOPIC must not be empty when KAFKA_BROKERS is set"))
	}
	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLE_RATIO must be within [0, 1], got %v", c.Telemetry.SampleRatio))
	}
	return errors.Join(errs...)
}

// Load reads the configuration from the environment. A .env file in the
// working directory, when present, is loaded first without overriding
// variables that are already set.
func Load() Config {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9090),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
		DB: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "credit"),
			Password:       getEnv("DB_PASSWORD", ""),
			Name:           getEnv("DB_NAME", "credit_risk"),
			SSLMode:        getEnv("DB_SSLMODE", "require"),
			MaxConns:       getEnvInt("DB_MAX_CONNS", 10),
			MigrateOnStart: getEnvBool("DB_MIGRATE", true),
		},
		Kafka: KafkaConfig{
			Brokers:       getEnvList("KAFKA_BROKERS"),
			EventsTopic:   getEnv("KAFKA_EVENTS_TOPIC", "credit.events"),
			RescoreTopic:  getEnv("KAFKA_RESCORE_TOPIC", ""),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "credit-service"),
			TLS:           getEnvBool("KAFKA_TLS", false),
			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", ""),
			SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
			RelayInterval: getEnvDuration("OUTBOX_RELAY_INTERVAL", 2*time.Second),
			RelayBatch:    getEnvInt("OUTBOX_RELAY_BATCH", 100),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", getEnv("SECRET_KEY", "")),
			JWTPublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Issuer:           getEnv("JWT_ISSUER", ""),
		},
		TLS: TLSConfig{
			CertFile:     getEnv("TLS_CERT_FILE", ""),
			KeyFile:      getEnv("TLS_KEY_FILE", ""),
			ClientCAFile: getEnv("TLS_CLIENT_CA_FILE", ""),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			OTLPInsecure: getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			SampleRatio:  getEnvFloat("OTEL_SAMPLE_RATIO", 1.0),
		},
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		ServiceName: getEnv("SERVICE_NAME", "credit-service"),
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvList splits a comma-separated variable, dropping blanks.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
