package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
//
// Lookups that miss return an error wrapping model.ErrNotFound. Methods
// named *ForUpdate lock the returned row until the unit of work ends.
// ---------------------------------------------------------------------------

// UserRepository reads applicant profiles.
type UserRepository interface {
	FindUser(ctx context.Context, lookup model.ApplicantLookup) (model.User, error)
	UpdateEmployment(ctx context.Context, userID int64, employmentType string, monthlyIncome decimal.Decimal) error
}

// AccountRepository persists credit accounts.
type AccountRepository interface {
	// InsertAccount assigns the next account id and stores the account.
	InsertAccount(ctx context.Context, account model.Account) (model.Account, error)
	// FindAccountForUpdate returns the account only if owned by userID.
	FindAccountForUpdate(ctx context.Context, userID, accountID int64) (model.Account, error)
	UpdateAccount(ctx context.Context, account model.Account) error
	// ListAccounts returns the user's accounts in status, newest first.
	ListAccounts(ctx context.Context, userID int64, status valueobject.AccountStatus) ([]model.Account, error)
	// ListActiveLoans returns active accounts with their outstanding amounts, newest first.
	ListActiveLoans(ctx context.Context, userID int64) ([]model.LoanSummary, error)
}

// PaymentRepository persists payment obligations.
type PaymentRepository interface {
	// InsertObligation assigns the next payment id and stores the obligation.
	InsertObligation(ctx context.Context, obligation model.PaymentObligation) (model.PaymentObligation, error)
	// FindObligationForUpdate returns the obligation only if its account is owned by userID.
	FindObligationForUpdate(ctx context.Context, userID, paymentID int64) (model.PaymentObligation, error)
	// EarliestDueForUpdate returns the account's due obligation with the
	// earliest due date, ties broken by id. found is false when none is due.
	EarliestDueForUpdate(ctx context.Context, accountID int64) (obligation model.PaymentObligation, found bool, err error)
	UpdateObligation(ctx context.Context, obligation model.PaymentObligation) error
	// ListPendingSettlements returns pending settlement requests, newest first.
	ListPendingSettlements(ctx context.Context, userID int64) ([]model.PaymentRecord, error)
	// PaymentHistory returns the most recent obligations by paid-or-due date.
	PaymentHistory(ctx context.Context, userID int64, limit int) ([]model.PaymentRecord, error)
}

// SnapshotRepository appends and reads score snapshots.
type SnapshotRepository interface {
	LatestSnapshot(ctx context.Context, userID int64) (snapshot model.ScoreSnapshot, found bool, err error)
	AppendSnapshot(ctx context.Context, snapshot model.ScoreSnapshot) (model.ScoreSnapshot, error)
	// RecentSnapshots returns up to limit latest snapshots in chronological order.
	RecentSnapshots(ctx context.Context, userID int64, limit int) ([]model.ScoreSnapshot, error)
}

// LedgerReader loads the facts scoring is computed from. An unknown user
// is ErrNotFound.
type LedgerReader interface {
	LoadFacts(ctx context.Context, userID int64) (model.LedgerFacts, error)
}

// ScoringLock serialises scoring for one user until the unit of work ends.
type ScoringLock interface {
	LockScoring(ctx context.Context, userID int64) error
}

// OutboxWriter stores domain events with the state change that raised them.
type OutboxWriter interface {
	Store(ctx context.Context, entries []events.OutboxEntry) error
}

// ---------------------------------------------------------------------------
// Unit of work
// ---------------------------------------------------------------------------

// Store is the transactional view of every repository.
type Store interface {
	UserRepository
	AccountRepository
	PaymentRepository
	SnapshotRepository
	LedgerReader
	ScoringLock
	OutboxWriter
}

// UnitOfWork runs fn atomically: every write made through store commits
// together when fn returns nil and is discarded otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}
