package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

func intPtr(v int) *int { return &v }

func activeAccount(balance string) Account {
	b := decimal.RequireFromString(balance)
	return ReconstructAccount(10, 1, valueobject.AccountTypeLoanGeneral, "car", intPtr(12),
		b, b, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), valueobject.AccountStatusActive)
}

func TestNewLoanRequest(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

	t.Run("valid instalment loan", func(t *testing.T) {
		acct, err := NewLoanRequest(1, valueobject.AccountTypeLoanEMI, decimal.NewFromInt(50000), "laptop", intPtr(12), now)
		require.NoError(t, err)

		assert.True(t, acct.Status().Equal(valueobject.AccountStatusPendingApproval))
		assert.True(t, acct.CreditLimit().Equal(decimal.NewFromInt(50000)))
		assert.True(t, acct.Balance().Equal(decimal.NewFromInt(50000)))
		assert.Equal(t, DateOf(now), acct.OpenedAt())
		require.NotNil(t, acct.TenureMonths())
		assert.Equal(t, 12, *acct.TenureMonths())
	})

	t.Run("card ignores tenure", func(t *testing.T) {
		acct, err := NewLoanRequest(1, valueobject.AccountTypeCreditCardUsage, decimal.NewFromInt(1000), "travel", intPtr(999), now)
		require.NoError(t, err)
		assert.Nil(t, acct.TenureMonths())
	})

	tests := []struct {
		name   string
		amount int64
		tenure *int
		reason string
	}{
		{name: "zero amount", amount: 0, tenure: intPtr(12)},
		{name: "tenure too short", amount: 100, tenure: intPtr(2)},
		{name: "tenure too long", amount: 100, tenure: intPtr(61)},
		{name: "tenure missing", amount: 100, tenure: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoanRequest(1, valueobject.AccountTypeLoanGeneral, decimal.NewFromInt(tt.amount), "car", tt.tenure, now)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	t.Run("purpose required", func(t *testing.T) {
		_, err := NewLoanRequest(1, valueobject.AccountTypeLoanGeneral, decimal.NewFromInt(100), "", intPtr(12), now)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAccount_Approve(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	pending, err := NewLoanRequest(1, valueobject.AccountTypeLoanGeneral, decimal.NewFromInt(20000), "car", intPtr(24), now)
	require.NoError(t, err)
	pending = pending.WithID(5)

	active, obligation, err := pending.Approve(now)
	require.NoError(t, err)

	assert.True(t, active.Status().Equal(valueobject.AccountStatusActive))
	assert.True(t, pending.Status().Equal(valueobject.AccountStatusPendingApproval), "original must be unchanged")
	assert.Equal(t, int64(5), obligation.AccountID())
	assert.Equal(t, time.Date(2026, 11, 18, 0, 0, 0, 0, time.UTC), obligation.DueDate())
	assert.True(t, obligation.AmountDue().Equal(decimal.NewFromInt(20000)))
	assert.True(t, obligation.AmountPaid().IsZero())
	assert.True(t, obligation.Status().Equal(valueobject.PaymentStatusDue))

	_, _, err = active.Approve(now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestAccount_Reject(t *testing.T) {
	pending := ReconstructAccount(3, 1, valueobject.AccountTypeLoanGeneral, "car", intPtr(12),
		decimal.NewFromInt(10), decimal.NewFromInt(10), time.Now(), valueobject.AccountStatusPendingApproval)

	rejected, err := pending.Reject()
	require.NoError(t, err)
	assert.True(t, rejected.Status().Equal(valueobject.AccountStatusRejected))

	_, err = rejected.Reject()
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestAccount_ApplySettlement(t *testing.T) {
	t.Run("exact balance closes", func(t *testing.T) {
		next, err := activeAccount("1000").ApplySettlement(decimal.NewFromInt(1000))
		require.NoError(t, err)
		assert.True(t, next.Balance().IsZero())
		assert.True(t, next.IsClosed())
	})

	t.Run("one less stays active", func(t *testing.T) {
		next, err := activeAccount("1000").ApplySettlement(decimal.NewFromInt(999))
		require.NoError(t, err)
		assert.True(t, next.Balance().Equal(decimal.NewFromInt(1)))
		assert.True(t, next.Status().Equal(valueobject.AccountStatusActive))
	})

	t.Run("residual within tolerance floors to zero", func(t *testing.T) {
		next, err := activeAccount("1000.0000005").ApplySettlement(decimal.NewFromInt(1000))
		require.NoError(t, err)
		assert.True(t, next.Balance().IsZero())
		assert.True(t, next.IsClosed())
	})

	t.Run("over balance conflicts", func(t *testing.T) {
		_, err := activeAccount("1000").ApplySettlement(decimal.NewFromInt(1001))
		require.ErrorIs(t, err, ErrConflict)

		var conflict *SettlementConflictError
		require.True(t, errors.As(err, &conflict))
		assert.True(t, conflict.Outstanding.Equal(decimal.NewFromInt(1000)))
		assert.True(t, conflict.Requested.Equal(decimal.NewFromInt(1001)))
	})

	t.Run("closed account", func(t *testing.T) {
		closed, err := activeAccount("10").ApplySettlement(decimal.NewFromInt(10))
		require.NoError(t, err)
		_, err = closed.ApplySettlement(decimal.NewFromInt(1))
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}
