package kafka

import (
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092", "localhost:9093"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, p.brokers)
	assert.Empty(t, p.writers)
	assert.Nil(t, p.transport)
}

func TestNewProducer_SecureTransport(t *testing.T) {
	p, err := NewProducer(Config{
		Brokers:       []string{"kafka:9093"},
		TLS:           true,
		SASLEnabled:   true,
		SASLMechanism: "SCRAM-SHA-512",
		SASLUsername:  "credit",
		SASLPassword:  "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, p.transport)
	assert.NotNil(t, p.transport.TLS)
	assert.NotNil(t, p.transport.SASL)

	w := p.getOrCreateWriter("credit.events")
	assert.Same(t, p.transport, w.Transport)
}

func TestNewProducer_UnknownMechanism(t *testing.T) {
	_, err := NewProducer(Config{SASLEnabled: true, SASLMechanism: "GSSAPI"})
	assert.Error(t, err)
}

func TestGetOrCreateWriter(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	w1 := p.getOrCreateWriter("topic-a")
	w2 := p.getOrCreateWriter("topic-a")
	w3 := p.getOrCreateWriter("topic-b")

	assert.Same(t, w1, w2)
	assert.NotSame(t, w1, w3)
	assert.Len(t, p.writers, 2)

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}

func TestToMessage(t *testing.T) {
	msg := toMessage(kafkago.Message{
		Key:   []byte("42"),
		Value: []byte(`{"user_id":42}`),
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte("identity.user.registered")},
		},
	})

	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, "identity.user.registered", msg.Headers["event_type"])
}
