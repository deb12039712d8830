package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

const paymentColumns = `
	p.payment_id, p.account_id, p.due_date, p.paid_date,
	p.amount_due, p.amount_paid, p.status`

// InsertObligation resyncs the id sequence and inserts the obligation.
func (s *txStore) InsertObligation(ctx context.Context, obligation model.PaymentObligation) (model.PaymentObligation, error) {
	if err := resyncSequence(ctx, s.q, "payments", "payment_id"); err != nil {
		return model.PaymentObligation{}, err
	}

	query := `
		INSERT INTO payments (account_id, due_date, paid_date, amount_due, amount_paid, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id
	`
	var id int64
	err := s.q.QueryRow(ctx, query,
		obligation.AccountID(), obligation.DueDate(), obligation.PaidDate(),
		obligation.AmountDue(), obligation.AmountPaid(), obligation.Status().String(),
	).Scan(&id)
	if err != nil {
		return model.PaymentObligation{}, fmt.Errorf("insert payment: %w", err)
	}
	return obligation.WithID(id), nil
}

// FindObligationForUpdate locks and returns an obligation on one of the
// user's accounts.
func (s *txStore) FindObligationForUpdate(ctx context.Context, userID, paymentID int64) (model.PaymentObligation, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments p
		JOIN credit_accounts ca ON ca.account_id = p.account_id
		WHERE p.payment_id = $1 AND ca.user_id = $2
		FOR UPDATE OF p`
	ob, err := scanObligation(s.q.QueryRow(ctx, query, paymentID, userID))
	if err != nil {
		return model.PaymentObligation{}, notFoundOr(err, "find payment %d", paymentID)
	}
	return ob, nil
}

// EarliestDueForUpdate locks the account's earliest due obligation.
func (s *txStore) EarliestDueForUpdate(ctx context.Context, accountID int64) (model.PaymentObligation, bool, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.account_id = $1 AND p.status = 'due'
		ORDER BY p.due_date ASC, p.payment_id ASC
		LIMIT 1
		FOR UPDATE`
	rows, err := s.q.Query(ctx, query, accountID)
	if err != nil {
		return model.PaymentObligation{}, false, fmt.Errorf("query earliest due payment: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return model.PaymentObligation{}, false, rows.Err()
	}
	ob, err := scanObligation(rows)
	if err != nil {
		return model.PaymentObligation{}, false, err
	}
	return ob, true, nil
}

// UpdateObligation writes the mutable columns of an obligation.
func (s *txStore) UpdateObligation(ctx context.Context, obligation model.PaymentObligation) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE payments SET paid_date = $1, amount_paid = $2, status = $3 WHERE payment_id = $4`,
		obligation.PaidDate(), obligation.AmountPaid(), obligation.Status().String(), obligation.ID(),
	)
	if err != nil {
		return fmt.Errorf("update payment %d: %w", obligation.ID(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %d: %w", obligation.ID(), model.ErrNotFound)
	}
	return nil
}

// ListPendingSettlements returns the user's pending settlement requests,
// newest first.
func (s *txStore) ListPendingSettlements(ctx context.Context, userID int64) ([]model.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + `, ca.account_type
		FROM payments p
		JOIN credit_accounts ca ON ca.account_id = p.account_id
		WHERE ca.user_id = $1 AND p.status = 'pending_approval'
		ORDER BY p.due_date DESC, p.payment_id DESC`
	return s.queryPaymentRecords(ctx, query, userID)
}

// PaymentHistory returns the user's latest obligations by activity date.
func (s *txStore) PaymentHistory(ctx context.Context, userID int64, limit int) ([]model.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + `, ca.account_type
		FROM payments p
		JOIN credit_accounts ca ON ca.account_id = p.account_id
		WHERE ca.user_id = $1
		ORDER BY COALESCE(p.paid_date, p.due_date) DESC, p.payment_id DESC
		LIMIT $2`
	return s.queryPaymentRecords(ctx, query, userID, limit)
}

func (s *txStore) queryPaymentRecords(ctx context.Context, query string, args ...any) ([]model.PaymentRecord, error) {
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var records []model.PaymentRecord
	for rows.Next() {
		var typeStr string
		ob, err := scanObligation(rows, &typeStr)
		if err != nil {
			return nil, err
		}
		accountType, err := valueobject.NewAccountType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("parse account type: %w", err)
		}
		records = append(records, model.PaymentRecord{Obligation: ob, AccountType: accountType})
	}
	return records, rows.Err()
}

// scanObligation reads paymentColumns followed by any extra destinations.
func scanObligation(s scannable, extra ...any) (model.PaymentObligation, error) {
	var (
		id, accountID         int64
		dueDate               time.Time
		paidDate              *time.Time
		amountDue, amountPaid decimal.Decimal
		statusStr             string
	)
	dest := append([]any{&id, &accountID, &dueDate, &paidDate, &amountDue, &amountPaid, &statusStr}, extra...)
	if err := s.Scan(dest...); err != nil {
		return model.PaymentObligation{}, fmt.Errorf("scan payment: %w", err)
	}

	status, err := valueobject.NewPaymentStatus(statusStr)
	if err != nil {
		return model.PaymentObligation{}, fmt.Errorf("parse payment status: %w", err)
	}
	return model.ReconstructPaymentObligation(id, accountID, dueDate, paidDate, amountDue, amountPaid, status), nil
}
