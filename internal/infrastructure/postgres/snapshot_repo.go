package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

const snapshotColumns = `history_id, user_id, score, risk_level, factors, calculated_at`

// LatestSnapshot returns the user's most recent snapshot.
func (s *txStore) LatestSnapshot(ctx context.Context, userID int64) (model.ScoreSnapshot, bool, error) {
	query := `SELECT ` + snapshotColumns + `
		FROM score_history
		WHERE user_id = $1
		ORDER BY calculated_at DESC, history_id DESC
		LIMIT 1`
	snapshots, err := s.querySnapshots(ctx, query, userID)
	if err != nil {
		return model.ScoreSnapshot{}, false, err
	}
	if len(snapshots) == 0 {
		return model.ScoreSnapshot{}, false, nil
	}
	return snapshots[0], true, nil
}

// AppendSnapshot inserts a snapshot and returns it with its id.
func (s *txStore) AppendSnapshot(ctx context.Context, snapshot model.ScoreSnapshot) (model.ScoreSnapshot, error) {
	factors, err := json.Marshal(snapshot.Factors)
	if err != nil {
		return model.ScoreSnapshot{}, fmt.Errorf("marshal factors: %w", err)
	}

	query := `
		INSERT INTO score_history (user_id, score, risk_level, factors, calculated_at)
		VALUES ($1, $2, $3, $4::jsonb, $5)
		RETURNING history_id
	`
	err = s.q.QueryRow(ctx, query,
		snapshot.UserID, snapshot.Score, snapshot.RiskLevel.String(), string(factors), snapshot.CalculatedAt,
	).Scan(&snapshot.ID)
	if err != nil {
		return model.ScoreSnapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return snapshot, nil
}

// RecentSnapshots returns up to limit latest snapshots, oldest first.
func (s *txStore) RecentSnapshots(ctx context.Context, userID int64, limit int) ([]model.ScoreSnapshot, error) {
	query := `SELECT ` + snapshotColumns + `
		FROM score_history
		WHERE user_id = $1
		ORDER BY calculated_at DESC, history_id DESC
		LIMIT $2`
	snapshots, err := s.querySnapshots(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	slices.Reverse(snapshots)
	return snapshots, nil
}

func (s *txStore) querySnapshots(ctx context.Context, query string, args ...any) ([]model.ScoreSnapshot, error) {
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []model.ScoreSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// scanSnapshot tolerates legacy rows: unknown risk levels are re-derived
// from the score and malformed factor values fall back to defaults.
func scanSnapshot(s scannable) (model.ScoreSnapshot, error) {
	var (
		snap      model.ScoreSnapshot
		riskStr   string
		rawFactor []byte
		at        time.Time
	)
	if err := s.Scan(&snap.ID, &snap.UserID, &snap.Score, &riskStr, &rawFactor, &at); err != nil {
		return model.ScoreSnapshot{}, fmt.Errorf("scan snapshot: %w", err)
	}
	snap.CalculatedAt = at.UTC()

	risk, err := valueobject.NewRiskLevel(strings.ToLower(strings.TrimSpace(riskStr)))
	if err != nil {
		risk = valueobject.RiskLevelFromScore(snap.Score)
	}
	snap.RiskLevel = risk

	if err := json.Unmarshal(rawFactor, &snap.Factors); err != nil {
		snap.Factors = model.DefaultFactorSet()
	}
	return snap, nil
}
