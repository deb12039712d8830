package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// AccountStatus – immutable value object
// ---------------------------------------------------------------------------

// AccountStatus represents the lifecycle stage of a credit account.
// pending_approval -> active | rejected; active -> closed.
type AccountStatus struct {
	value string
}

const (
	accountStatusPendingApproval = "pending_approval"
	accountStatusActive          = "active"
	accountStatusRejected        = "rejected"
	accountStatusClosed          = "closed"
)

var (
	AccountStatusPendingApproval = AccountStatus{value: accountStatusPendingApproval}
	AccountStatusActive          = AccountStatus{value: accountStatusActive}
	AccountStatusRejected        = AccountStatus{value: accountStatusRejected}
	AccountStatusClosed          = AccountStatus{value: accountStatusClosed}
)

var validAccountStatuses = map[string]AccountStatus{
	accountStatusPendingApproval: AccountStatusPendingApproval,
	accountStatusActive:          AccountStatusActive,
	accountStatusRejected:        AccountStatusRejected,
	accountStatusClosed:          AccountStatusClosed,
}

// NewAccountStatus creates an AccountStatus from a raw string.
func NewAccountStatus(s string) (AccountStatus, error) {
	v, ok := validAccountStatuses[s]
	if !ok {
		return AccountStatus{}, fmt.Errorf("invalid account status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s AccountStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s AccountStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s AccountStatus) Equal(other AccountStatus) bool { return s.value == other.value }

// IsTerminal reports whether no further transition is possible.
func (s AccountStatus) IsTerminal() bool {
	return s.value == accountStatusRejected || s.value == accountStatusClosed
}

// ---------------------------------------------------------------------------
// PaymentStatus – immutable value object
// ---------------------------------------------------------------------------

// PaymentStatus represents the state of a payment obligation. Scheduled
// instalments move between due, paid and late; settlement requests move
// from pending_approval to approved or rejected.
type PaymentStatus struct {
	value string
}

const (
	paymentStatusDue             = "due"
	paymentStatusPaid            = "paid"
	paymentStatusLate            = "late"
	paymentStatusPendingApproval = "pending_approval"
	paymentStatusApproved        = "approved"
	paymentStatusRejected        = "rejected"
)

var (
	PaymentStatusDue             = PaymentStatus{value: paymentStatusDue}
	PaymentStatusPaid            = PaymentStatus{value: paymentStatusPaid}
	PaymentStatusLate            = PaymentStatus{value: paymentStatusLate}
	PaymentStatusPendingApproval = PaymentStatus{value: paymentStatusPendingApproval}
	PaymentStatusApproved        = PaymentStatus{value: paymentStatusApproved}
	PaymentStatusRejected        = PaymentStatus{value: paymentStatusRejected}
)

var validPaymentStatuses = map[string]PaymentStatus{
	paymentStatusDue:             PaymentStatusDue,
	paymentStatusPaid:            PaymentStatusPaid,
	paymentStatusLate:            PaymentStatusLate,
	paymentStatusPendingApproval: PaymentStatusPendingApproval,
	paymentStatusApproved:        PaymentStatusApproved,
	paymentStatusRejected:        PaymentStatusRejected,
}

// NewPaymentStatus creates a PaymentStatus from a raw string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	v, ok := validPaymentStatuses[s]
	if !ok {
		return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PaymentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PaymentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PaymentStatus) Equal(other PaymentStatus) bool { return s.value == other.value }

// IsCompleted reports whether the obligation counts as a completed payment
// for payment-history scoring.
func (s PaymentStatus) IsCompleted() bool {
	switch s.value {
	case paymentStatusPaid, paymentStatusLate, paymentStatusApproved:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
