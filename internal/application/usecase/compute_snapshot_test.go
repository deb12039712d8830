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

func TestComputeSnapshot_Execute(t *testing.T) {
	t.Run("computes the baseline for a user without history", func(t *testing.T) {
		store := seededStore()
		uc := usecase.NewComputeSnapshotUseCase(store, service.NewScoreEngine(), discardLogger())

		resp, err := uc.Execute(context.Background(), dto.ComputeSnapshotRequest{UserID: testUserID})

		require.NoError(t, err)
		assert.Equal(t, 713, resp.Score)
		assert.Equal(t, "medium", resp.RiskLevel)
		assert.Equal(t, float64(70), resp.Factors[model.FactorPaymentHistory])
		assert.Equal(t, float64(100), resp.Factors[model.FactorCreditUtilization])
		assert.Equal(t, float64(45), resp.Factors[model.FactorCreditAge])
		assert.Equal(t, float64(80), resp.Factors[model.FactorInquiries])
		assert.NotZero(t, resp.ID)

		require.Len(t, store.Snapshots(testUserID), 1)
		assert.Equal(t, []string{"credit.score_snapshot.recorded"}, outboxTypes(t, store))
	})

	t.Run("applies the inquiry penalty to the previous inquiries factor", func(t *testing.T) {
		store := seededStore()
		uc := usecase.NewComputeSnapshotUseCase(store, service.NewScoreEngine(), discardLogger())
		ctx := context.Background()

		_, err := uc.Execute(ctx, dto.ComputeSnapshotRequest{UserID: testUserID, InquiryPenalty: 8})
		require.NoError(t, err)
		resp, err := uc.Execute(ctx, dto.ComputeSnapshotRequest{UserID: testUserID, InquiryPenalty: 8})
		require.NoError(t, err)

		assert.Equal(t, float64(64), resp.Factors[model.FactorInquiries])
		assert.Len(t, store.Snapshots(testUserID), 2)
	})

	t.Run("score stays in range and matches the classifier", func(t *testing.T) {
		store := seededStore()
		activeLoan(store, 1, 1, 200000, today().AddDate(0, 0, -90))
		uc := usecase.NewComputeSnapshotUseCase(store, service.NewScoreEngine(), discardLogger())

		resp, err := uc.Execute(context.Background(), dto.ComputeSnapshotRequest{UserID: testUserID, InquiryPenalty: 200})

		require.NoError(t, err)
		assert.GreaterOrEqual(t, resp.Score, valueobject.MinScore)
		assert.LessOrEqual(t, resp.Score, valueobject.MaxScore)
		assert.Equal(t, valueobject.RiskLevelFromScore(resp.Score).String(), resp.RiskLevel)
		assert.Equal(t, float64(35), resp.Factors[model.FactorInquiries])
	})

	t.Run("fails for an unknown user", func(t *testing.T) {
		uc := usecase.NewComputeSnapshotUseCase(seededStore(), service.NewScoreEngine(), discardLogger())

		_, err := uc.Execute(context.Background(), dto.ComputeSnapshotRequest{UserID: 404})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("rejects a missing user id", func(t *testing.T) {
		uc := usecase.NewComputeSnapshotUseCase(seededStore(), service.NewScoreEngine(), discardLogger())

		_, err := uc.Execute(context.Background(), dto.ComputeSnapshotRequest{})

		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("fails when the unit of work fails", func(t *testing.T) {
		uc := usecase.NewComputeSnapshotUseCase(failingUnitOfWork(), service.NewScoreEngine(), discardLogger())

		_, err := uc.Execute(context.Background(), dto.ComputeSnapshotRequest{UserID: testUserID})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "compute snapshot")
		assert.ErrorIs(t, err, errDatabaseUnavailable)
	})

	t.Run("discards the snapshot when the outbox write fails", func(t *testing.T) {
		store := seededStore()
		uc := usecase.NewComputeSnapshotUseCase(outboxFailingUnitOfWork(store), service.NewScoreEngine(), discardLogger())

		_, err := uc.Execute(context.Background(), dto.ComputeSnapshotRequest{UserID: testUserID})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store outbox entries")
		assert.Empty(t, store.Snapshots(testUserID))
	})
}

func TestEnsureSnapshot_Execute(t *testing.T) {
	t.Run("creates the baseline once", func(t *testing.T) {
		store := seededStore()
		uc := usecase.NewEnsureSnapshotUseCase(store, service.NewScoreEngine(), discardLogger())
		ctx := context.Background()

		first, err := uc.Execute(ctx, dto.EnsureSnapshotRequest{UserID: testUserID})
		require.NoError(t, err)
		second, err := uc.Execute(ctx, dto.EnsureSnapshotRequest{UserID: testUserID})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, store.Snapshots(testUserID), 1)
	})

	t.Run("returns the existing latest snapshot", func(t *testing.T) {
		store := seededStore()
		existing := store.PutSnapshot(model.NewScoreSnapshot(testUserID, 760, model.DefaultFactorSet(), today()))
		uc := usecase.NewEnsureSnapshotUseCase(store, service.NewScoreEngine(), discardLogger())

		resp, err := uc.Execute(context.Background(), dto.EnsureSnapshotRequest{UserID: testUserID})

		require.NoError(t, err)
		assert.Equal(t, existing.ID, resp.ID)
		assert.Equal(t, 760, resp.Score)
		assert.Empty(t, outboxTypes(t, store))
	})
}
