package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

const accountColumns = `
	ca.account_id, ca.user_id, ca.account_type, ca.purpose, ca.tenure_months,
	ca.credit_limit, ca.current_balance, ca.opened_date, ca.status`

// InsertAccount resyncs the id sequence and inserts the account.
func (s *txStore) InsertAccount(ctx context.Context, account model.Account) (model.Account, error) {
	if err := resyncSequence(ctx, s.q, "credit_accounts", "account_id"); err != nil {
		return model.Account{}, err
	}

	query := `
		INSERT INTO credit_accounts (
			user_id, account_type, purpose, tenure_months,
			credit_limit, current_balance, opened_date, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING account_id
	`
	var id int64
	err := s.q.QueryRow(ctx, query,
		account.UserID(), account.Type().String(), account.Purpose(), account.TenureMonths(),
		account.CreditLimit(), account.Balance(), account.OpenedAt(), account.Status().String(),
	).Scan(&id)
	if err != nil {
		return model.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return account.WithID(id), nil
}

// FindAccountForUpdate locks and returns an account owned by userID.
func (s *txStore) FindAccountForUpdate(ctx context.Context, userID, accountID int64) (model.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM credit_accounts ca
		WHERE ca.account_id = $1 AND ca.user_id = $2
		FOR UPDATE`
	account, err := scanAccount(s.q.QueryRow(ctx, query, accountID, userID))
	if err != nil {
		return model.Account{}, notFoundOr(err, "find account %d", accountID)
	}
	return account, nil
}

// UpdateAccount writes the mutable columns of an account.
func (s *txStore) UpdateAccount(ctx context.Context, account model.Account) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE credit_accounts SET current_balance = $1, status = $2 WHERE account_id = $3`,
		account.Balance(), account.Status().String(), account.ID(),
	)
	if err != nil {
		return fmt.Errorf("update account %d: %w", account.ID(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", account.ID(), model.ErrNotFound)
	}
	return nil
}

// ListAccounts returns the user's accounts in status, newest first.
func (s *txStore) ListAccounts(ctx context.Context, userID int64, status valueobject.AccountStatus) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM credit_accounts ca
		WHERE ca.user_id = $1 AND ca.status = $2
		ORDER BY ca.account_id DESC`
	rows, err := s.q.Query(ctx, query, userID, status.String())
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// ListActiveLoans returns active accounts with the larger of their balance
// and the unpaid part of their scheduled obligations.
func (s *txStore) ListActiveLoans(ctx context.Context, userID int64) ([]model.LoanSummary, error) {
	query := `SELECT ` + accountColumns + `,
		       GREATEST(
		           COALESCE(SUM(GREATEST(p.amount_due - p.amount_paid, 0))
		                    FILTER (WHERE p.status IN ('due', 'paid', 'late')), 0),
		           ca.current_balance
		       ) AS outstanding
		FROM credit_accounts ca
		LEFT JOIN payments p ON p.account_id = ca.account_id
		WHERE ca.user_id = $1 AND ca.status = 'active'
		GROUP BY ca.account_id
		ORDER BY ca.account_id DESC`
	rows, err := s.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query active loans: %w", err)
	}
	defer rows.Close()

	var loans []model.LoanSummary
	for rows.Next() {
		var outstanding decimal.Decimal
		a, err := scanAccount(rows, &outstanding)
		if err != nil {
			return nil, err
		}
		loans = append(loans, model.LoanSummary{Account: a, Outstanding: outstanding})
	}
	return loans, rows.Err()
}

// scanAccount reads accountColumns followed by any extra destinations.
func scanAccount(s scannable, extra ...any) (model.Account, error) {
	var (
		id, userID           int64
		typeStr, purpose     string
		tenure               *int
		creditLimit, balance decimal.Decimal
		openedAt             time.Time
		statusStr            string
	)
	dest := append([]any{
		&id, &userID, &typeStr, &purpose, &tenure,
		&creditLimit, &balance, &openedAt, &statusStr,
	}, extra...)
	if err := s.Scan(dest...); err != nil {
		return model.Account{}, fmt.Errorf("scan account: %w", err)
	}

	accountType, err := valueobject.NewAccountType(typeStr)
	if err != nil {
		return model.Account{}, fmt.Errorf("parse account type: %w", err)
	}
	status, err := valueobject.NewAccountStatus(statusStr)
	if err != nil {
		return model.Account{}, fmt.Errorf("parse account status: %w", err)
	}
	return model.ReconstructAccount(
		id, userID, accountType, purpose, tenure, creditLimit, balance, openedAt, status,
	), nil
}
