package model

import (
	"time"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// ScoreSnapshot is one append-only scoring record. The latest snapshot of a
// user is that user's current score.
type ScoreSnapshot struct {
	ID           int64
	UserID       int64
	Score        int
	RiskLevel    valueobject.RiskLevel
	Factors      FactorSet
	CalculatedAt time.Time
}

// NewScoreSnapshot clamps score into range and classifies it.
func NewScoreSnapshot(userID int64, score int, factors FactorSet, at time.Time) ScoreSnapshot {
	score = min(max(score, valueobject.MinScore), valueobject.MaxScore)
	return ScoreSnapshot{
		UserID:       userID,
		Score:        score,
		RiskLevel:    valueobject.RiskLevelFromScore(score),
		Factors:      factors,
		CalculatedAt: at,
	}
}
