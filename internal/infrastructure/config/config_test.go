package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()

	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, "credit.events", cfg.Kafka.EventsTopic)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, 2*time.Second, cfg.Kafka.RelayInterval)
	assert.True(t, cfg.DB.MigrateOnStart)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GRPC_PORT", "7000")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("KAFKA_RESCORE_TOPIC", "identity.users.created")
	t.Setenv("OUTBOX_RELAY_INTERVAL", "500ms")
	t.Setenv("DB_MIGRATE", "false")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECRET_KEY", "legacy-secret")

	cfg := Load()

	assert.Equal(t, ":7000", cfg.GRPCAddr())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "identity.users.created", cfg.Kafka.RescoreTopic)
	assert.Equal(t, 500*time.Millisecond, cfg.Kafka.RelayInterval)
	assert.False(t, cfg.DB.MigrateOnStart)
	assert.Equal(t, "legacy-secret", cfg.Auth.JWTSecret)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			DB:        DatabaseConfig{Password: "secret"},
			Auth:      AuthConfig{JWTSecret: "jwt"},
			Telemetry: TelemetryConfig{SampleRatio: 1},
		}
	}

	t.Run("accepts a minimal configuration", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("a database url replaces the password", func(t *testing.T) {
		cfg := valid()
		cfg.DB = DatabaseConfig{URL: "postgres://u:p@db/credit"}
		require.NoError(t, cfg.Validate())
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := valid()
		cfg.DB.Password = ""
		cfg.Auth.JWTSecret = ""
		cfg.TLS.CertFile = "server.crt"
		cfg.Telemetry.SampleRatio = 2

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.Contains(t, err.Error(), "TLS_CERT_FILE")
		assert.Contains(t, err.Error(), "OTEL_SAMPLE_RATIO")
	})
}
