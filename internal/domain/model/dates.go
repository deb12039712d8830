package model

import "time"

// LoanDueAfter is the gap between loan approval and the first due date.
const LoanDueAfter = 30 * 24 * time.Hour

// DateOf truncates t to midnight UTC. Due and paid dates are calendar days.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
