package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// User is the applicant profile owned by the identity service. The credit
// service only updates income and employment on loan intake.
type User struct {
	ID             int64
	Username       string
	FullName       string
	DateOfBirth    *time.Time
	Phone          string
	Address        string
	MonthlyIncome  *decimal.Decimal
	EmploymentType string
}

// DisplayName prefers the full name.
func (u User) DisplayName() string {
	if strings.TrimSpace(u.FullName) != "" {
		return u.FullName
	}
	return u.Username
}

// ApplicantID is the canonical external reference, e.g. APP-00042.
func (u User) ApplicantID() string {
	return FormatApplicantID(u.ID)
}

// FormatApplicantID renders a user id as an applicant reference.
func FormatApplicantID(userID int64) string {
	return fmt.Sprintf("APP-%05d", userID)
}

var applicantIDPattern = regexp.MustCompile(`(?i)^APP-(\d+)$`)

// ApplicantLookup identifies a user by id or, failing that, by username.
type ApplicantLookup struct {
	UserID   int64
	Username string
}

// ParseApplicantLookup accepts "APP-00042", "42" or a username.
func ParseApplicantLookup(raw string) (ApplicantLookup, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ApplicantLookup{}, NewValidationError("applicant_id", "is required")
	}
	if m := applicantIDPattern.FindStringSubmatch(raw); m != nil {
		raw = m[1]
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if id <= 0 {
			return ApplicantLookup{}, NewValidationError("applicant_id", "must be positive")
		}
		return ApplicantLookup{UserID: id}, nil
	}
	return ApplicantLookup{Username: raw}, nil
}

// String renders the lookup for logs and errors.
func (l ApplicantLookup) String() string {
	if l.UserID > 0 {
		return FormatApplicantID(l.UserID)
	}
	return l.Username
}
