package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
	pkgkafka "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/kafka"
)

// Publisher is the subset of *pkgkafka.Producer the relay needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// OutboxRelay moves committed outbox entries onto a Kafka topic. Delivery is
// at least once: entries are marked published only after the write succeeds.
type OutboxRelay struct {
	outbox    events.OutboxRepository
	publisher Publisher
	topic     string
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

// NewOutboxRelay creates a relay polling outbox every interval.
func NewOutboxRelay(
	outbox events.OutboxRepository,
	publisher Publisher,
	topic string,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelay {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &OutboxRelay{
		outbox:    outbox,
		publisher: publisher,
		topic:     topic,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Run polls until ctx is canceled. Failed batches are retried on the next tick.
func (r *OutboxRelay) Run(ctx context.Context) {
	r.logger.Info("outbox relay starting", "topic", r.topic, "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopping")
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.ErrorContext(ctx, "outbox relay failed", "error", err)
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many entries were sent.
// It keeps draining while full batches come back.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	total := 0
	for {
		entries, err := r.outbox.FetchUnpublished(ctx, r.batchSize)
		if err != nil {
			return total, fmt.Errorf("fetch unpublished: %w", err)
		}
		if len(entries) == 0 {
			return total, nil
		}

		messages := make([]pkgkafka.Message, 0, len(entries))
		ids := make([]string, 0, len(entries))
		for _, e := range entries {
			messages = append(messages, toMessage(e))
			ids = append(ids, e.ID)
		}

		if err := r.publisher.Publish(ctx, r.topic, messages...); err != nil {
			return total, fmt.Errorf("publish %d entries: %w", len(entries), err)
		}
		if err := r.outbox.MarkPublished(ctx, ids); err != nil {
			return total, fmt.Errorf("mark published: %w", err)
		}

		total += len(entries)
		r.logger.DebugContext(ctx, "outbox batch relayed", "count", len(entries), "topic", r.topic)

		if len(entries) < r.batchSize {
			return total, nil
		}
	}
}

func toMessage(e events.OutboxEntry) pkgkafka.Message {
	return pkgkafka.Message{
		Key:   []byte(e.AggregateID),
		Value: e.Payload,
		Headers: map[string]string{
			"event_type":     e.EventType,
			"event_id":       e.ID,
			"aggregate_type": e.AggregateType,
		},
	}
}
