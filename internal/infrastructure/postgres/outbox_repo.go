package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
	pkgpostgres "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/postgres"
)

// OutboxRepo implements events.OutboxRepository on the pool. The relay uses
// it outside any unit of work.
type OutboxRepo struct {
	pool *pgxpool.Pool
}

var _ events.OutboxRepository = (*OutboxRepo)(nil)

// NewOutboxRepo creates a PostgreSQL-backed outbox repository.
func NewOutboxRepo(pool *pgxpool.Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// Store inserts entries outside a unit of work.
func (r *OutboxRepo) Store(ctx context.Context, entries []events.OutboxEntry) error {
	return storeOutbox(ctx, r.pool, entries)
}

// FetchUnpublished returns up to batchSize unpublished entries, oldest first.
func (r *OutboxRepo) FetchUnpublished(ctx context.Context, batchSize int) ([]events.OutboxEntry, error) {
	query := `
		SELECT id::text, aggregate_id, aggregate_type, event_type, payload, created_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at ASC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, batchSize)
	if err != nil {
		return nil, fmt.Errorf("query outbox: %w", err)
	}
	defer rows.Close()

	var entries []events.OutboxEntry
	for rows.Next() {
		var e events.OutboxEntry
		if err := rows.Scan(&e.ID, &e.AggregateID, &e.AggregateType, &e.EventType, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MarkPublished stamps the given entries as published.
func (r *OutboxRepo) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE outbox SET published_at = now() WHERE id::text = ANY($1) AND published_at IS NULL`, ids,
	)
	if err != nil {
		return fmt.Errorf("mark outbox published: %w", err)
	}
	return nil
}

// Store inserts entries inside the unit of work.
func (s *txStore) Store(ctx context.Context, entries []events.OutboxEntry) error {
	return storeOutbox(ctx, s.q, entries)
}

func storeOutbox(ctx context.Context, q pkgpostgres.Querier, entries []events.OutboxEntry) error {
	query := `
		INSERT INTO outbox (id, aggregate_id, aggregate_type, event_type, payload, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5::jsonb, $6)
	`
	for _, e := range entries {
		if _, err := q.Exec(ctx, query,
			e.ID, e.AggregateID, e.AggregateType, e.EventType, string(e.Payload), e.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert outbox entry %s: %w", e.ID, err)
		}
	}
	return nil
}
