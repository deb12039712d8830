package valueobject

import (
	"fmt"
	"strings"
)

// Recommendation is the advisory decision attached to an evaluation.
type Recommendation string

const (
	RecommendationApprove Recommendation = "APPROVE"
	RecommendationReview  Recommendation = "REVIEW"
	RecommendationReject  Recommendation = "REJECT"
)

// DecisionAction is an administrator's verdict on a pending request.
type DecisionAction string

const (
	DecisionApprove DecisionAction = "APPROVE"
	DecisionReject  DecisionAction = "REJECT"
)

// NewDecisionAction parses an action, case-insensitively.
func NewDecisionAction(s string) (DecisionAction, error) {
	switch a := DecisionAction(strings.ToUpper(strings.TrimSpace(s))); a {
	case DecisionApprove, DecisionReject:
		return a, nil
	}
	return "", fmt.Errorf("invalid decision action: %q", s)
}

// RequestType distinguishes the two kinds of pending request.
type RequestType string

const (
	RequestTypeLoan       RequestType = "LOAN"
	RequestTypeSettlement RequestType = "SETTLEMENT"
)

// NewRequestType parses a request type, case-insensitively.
func NewRequestType(s string) (RequestType, error) {
	switch rt := RequestType(strings.ToUpper(strings.TrimSpace(s))); rt {
	case RequestTypeLoan, RequestTypeSettlement:
		return rt, nil
	}
	return "", fmt.Errorf("invalid request type: %q", s)
}
