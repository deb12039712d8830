package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/port"
	pkgpostgres "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/postgres"
)

// Compile-time interface checks.
var (
	_ port.UnitOfWork = (*Store)(nil)
	_ port.Store      = (*txStore)(nil)
)

// Store implements port.UnitOfWork on a pgx pool. Every unit of work is one
// database transaction.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a PostgreSQL-backed store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Do runs fn inside a transaction, committing when fn returns nil.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, store port.Store) error) error {
	return pkgpostgres.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txStore{q: tx})
	})
}

// txStore implements every repository port on one transaction.
type txStore struct {
	q pkgpostgres.Querier
}

// LockScoring takes a transaction-scoped advisory lock keyed by user id.
func (s *txStore) LockScoring(ctx context.Context, userID int64) error {
	if _, err := s.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return fmt.Errorf("advisory lock user %d: %w", userID, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

// scannable is satisfied by pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// notFoundOr maps pgx.ErrNoRows onto model.ErrNotFound.
func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf(format+": %w", append(args, model.ErrNotFound)...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// sequenceLockClass namespaces the two-key advisory locks taken around id
// allocation; single-key locks (LockScoring) live in a separate space.
const sequenceLockClass = 0x5e9

// resyncSequence moves a serial sequence past the table's largest id so
// that inserts succeed after rows were loaded with explicit ids. The
// per-table lock is held until commit, so a concurrent allocator waits and
// then sees the committed row; the sequence only ever moves forward.
func resyncSequence(ctx context.Context, q pkgpostgres.Querier, table, column string) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1, hashtext($2))`, sequenceLockClass, table); err != nil {
		return fmt.Errorf("lock %s sequence: %w", table, err)
	}

	query := fmt.Sprintf(`
		WITH seq AS (SELECT pg_get_serial_sequence('%[1]s', '%[2]s') AS name)
		SELECT setval(seq.name, GREATEST(
			COALESCE((SELECT MAX(%[2]s) FROM %[1]s), 0) + 1,
			COALESCE((
				SELECT s.last_value + 1 FROM pg_sequences s
				WHERE format('%%I.%%I', s.schemaname, s.sequencename) = seq.name
			), 1)
		), false)
		FROM seq`,
		table, column,
	)
	if _, err := q.Exec(ctx, query); err != nil {
		return fmt.Errorf("resync %s sequence: %w", table, err)
	}
	return nil
}
