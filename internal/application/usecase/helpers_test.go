package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/port"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/infrastructure/memory"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
)

const testUserID int64 = 7

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func today() time.Time {
	return model.DateOf(time.Now().UTC())
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// seededStore returns a store holding one applicant with a monthly income.
func seededStore() *memory.Store {
	income := dec(50000)
	store := memory.NewStore()
	store.PutUser(model.User{
		ID:             testUserID,
		Username:       "asha",
		FullName:       "Asha Karki",
		Phone:          "9800000000",
		MonthlyIncome:  &income,
		EmploymentType: "salaried",
	})
	return store
}

// activeLoan seeds an active account with one due obligation of the full balance.
func activeLoan(store *memory.Store, accountID, obligationID int64, balance int64, due time.Time) {
	tenure := 12
	store.PutAccount(model.ReconstructAccount(
		accountID, testUserID, valueobject.AccountTypeLoanGeneral, "working capital", &tenure,
		dec(balance), dec(balance), today().AddDate(0, -2, 0), valueobject.AccountStatusActive,
	))
	store.PutObligation(model.ReconstructPaymentObligation(
		obligationID, accountID, due, nil, dec(balance), decimal.Zero, valueobject.PaymentStatusDue,
	))
}

// pendingSettlement seeds a settlement request against an account.
func pendingSettlement(store *memory.Store, paymentID, accountID int64, amount decimal.Decimal) {
	store.PutObligation(model.ReconstructPaymentObligation(
		paymentID, accountID, today(), nil, amount, decimal.Zero, valueobject.PaymentStatusPendingApproval,
	))
}

// pendingLoan seeds a pending_approval account.
func pendingLoan(store *memory.Store, accountID int64, amount int64) {
	tenure := 24
	store.PutAccount(model.ReconstructAccount(
		accountID, testUserID, valueobject.AccountTypeLoanEMI, "bike", &tenure,
		dec(amount), dec(amount), today(), valueobject.AccountStatusPendingApproval,
	))
}

func outboxTypes(t *testing.T, store *memory.Store) []string {
	t.Helper()
	entries, err := store.FetchUnpublished(context.Background(), 100)
	require.NoError(t, err)
	types := make([]string, len(entries))
	for i, e := range entries {
		types[i] = e.EventType
	}
	return types
}

// ---------------------------------------------------------------------------
// Mock unit of work
// ---------------------------------------------------------------------------

type mockUnitOfWork struct {
	doFunc func(ctx context.Context, fn func(ctx context.Context, store port.Store) error) error
}

func (m *mockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, store port.Store) error) error {
	if m.doFunc != nil {
		return m.doFunc(ctx, fn)
	}
	return nil
}

var errDatabaseUnavailable = errors.New("database unavailable")

func failingUnitOfWork() *mockUnitOfWork {
	return &mockUnitOfWork{
		doFunc: func(context.Context, func(context.Context, port.Store) error) error {
			return errDatabaseUnavailable
		},
	}
}

// innerStore aliases port.Store so the embedded field does not collide with
// the Store method below.
type innerStore = port.Store

// failingOutboxStore wraps a real store and fails every outbox write.
type failingOutboxStore struct {
	innerStore
}

func (failingOutboxStore) Store(context.Context, []events.OutboxEntry) error {
	return errDatabaseUnavailable
}

// outboxFailingUnitOfWork runs fn against inner but rejects outbox writes.
func outboxFailingUnitOfWork(inner port.UnitOfWork) *mockUnitOfWork {
	return &mockUnitOfWork{
		doFunc: func(ctx context.Context, fn func(ctx context.Context, store port.Store) error) error {
			return inner.Do(ctx, func(ctx context.Context, store port.Store) error {
				return fn(ctx, failingOutboxStore{innerStore: store})
			})
		},
	}
}
