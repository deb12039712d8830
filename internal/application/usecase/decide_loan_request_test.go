package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/usecase"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/service"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

func TestDecideLoanRequest_Execute(t *testing.T) {
	t.Run("approval activates the account and schedules one obligation", func(t *testing.T) {
		store := seededStore()
		pendingLoan(store, 3, 40000)
		uc := usecase.NewDecideLoanRequestUseCase(store, service.NewScoreEngine(), discardLogger())

		resp, err := uc.Execute(context.Background(), dto.DecideLoanRequest{
			UserID: testUserID, AccountID: 3, Action: "approve",
		})

		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, "LOAN", resp.RequestType)

		account, ok := store.Account(3)
		require.True(t, ok)
		assert.True(t, account.Status().Equal(valueobject.AccountStatusActive))

		obligations := store.Obligations(3)
		require.Len(t, obligations, 1)
		assert.True(t, obligations[0].Status().Equal(valueobject.PaymentStatusDue))
		assert.True(t, obligations[0].AmountDue().Equal(account.Balance()))
		assert.True(t, obligations[0].AmountPaid().IsZero())
		assert.Equal(t, today().AddDate(0, 0, 30), obligations[0].DueDate())

		require.NotNil(t, resp.Rescored)
		assert.Equal(t, float64(80-service.LoanApprovalInquiryPenalty), resp.Rescored.Factors[model.FactorInquiries])
		assert.Len(t, store.Snapshots(testUserID), 1)
		assert.Equal(t, []string{
			"credit.loan_request.approved",
			"credit.score_snapshot.recorded",
		}, outboxTypes(t, store))
	})

	t.Run("rejection changes only the account status", func(t *testing.T) {
		store := seededStore()
		pendingLoan(store, 3, 40000)
		uc := usecase.NewDecideLoanRequestUseCase(store, service.NewScoreEngine(), discardLogger())

		resp, err := uc.Execute(context.Background(), dto.DecideLoanRequest{
			UserID: testUserID, AccountID: 3, Action: "REJECT",
		})

		require.NoError(t, err)
		assert.Equal(t, "rejected", resp.Status)
		assert.Nil(t, resp.Rescored)
		assert.Empty(t, store.Obligations(3))
		assert.Empty(t, store.Snapshots(testUserID))
	})

	t.Run("an already decided account cannot be decided again", func(t *testing.T) {
		store := seededStore()
		activeLoan(store, 1, 1, 10000, today().AddDate(0, 0, 10))
		uc := usecase.NewDecideLoanRequestUseCase(store, service.NewScoreEngine(), discardLogger())

		_, err := uc.Execute(context.Background(), dto.DecideLoanRequest{
			UserID: testUserID, AccountID: 1, Action: "APPROVE",
		})

		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
		assert.Len(t, store.Obligations(1), 1)
	})

	t.Run("another user's account is not found", func(t *testing.T) {
		store := seededStore()
		pendingLoan(store, 3, 40000)
		uc := usecase.NewDecideLoanRequestUseCase(store, service.NewScoreEngine(), discardLogger())

		_, err := uc.Execute(context.Background(), dto.DecideLoanRequest{
			UserID: 99, AccountID: 3, Action: "APPROVE",
		})

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("rejects an unknown action", func(t *testing.T) {
		uc := usecase.NewDecideLoanRequestUseCase(seededStore(), service.NewScoreEngine(), discardLogger())

		_, err := uc.Execute(context.Background(), dto.DecideLoanRequest{
			UserID: testUserID, AccountID: 3, Action: "MAYBE",
		})

		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("fails when the unit of work fails", func(t *testing.T) {
		uc := usecase.NewDecideLoanRequestUseCase(failingUnitOfWork(), service.NewScoreEngine(), discardLogger())

		_, err := uc.Execute(context.Background(), dto.DecideLoanRequest{
			UserID: testUserID, AccountID: 3, Action: "APPROVE",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decide loan request 3")
	})
}
