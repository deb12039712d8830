package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the statement surface shared by pgxpool.Pool and pgx.Tx, so
// repositories run unchanged inside or outside a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Beginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type Beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// DefaultTxOptions is read committed; callers serialize with row locks.
var DefaultTxOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

// WithTransaction runs fn in a transaction with DefaultTxOptions.
func WithTransaction(ctx context.Context, db Beginner, fn func(tx pgx.Tx) error) error {
	return WithTransactionOptions(ctx, db, DefaultTxOptions, fn)
}

// WithTransactionOptions runs fn in a transaction. An error from fn, or a
// panic, rolls back; otherwise the transaction is committed. Rollback uses a
// context that survives cancellation of ctx.
func WithTransactionOptions(ctx context.Context, db Beginner, opts pgx.TxOptions, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx)) //nolint:errcheck // re-panicking
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("postgres: rollback tx: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit tx: %w", err)
	}
	return nil
}
