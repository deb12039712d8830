package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// LoadFacts reads everything scoring needs for one user. Run inside the
// scoring lock so that the reads form one consistent view.
func (s *txStore) LoadFacts(ctx context.Context, userID int64) (model.LedgerFacts, error) {
	facts := model.LedgerFacts{UserID: userID}

	// 1. Income.
	var income decimal.NullDecimal
	err := s.q.QueryRow(ctx, `SELECT monthly_income FROM users WHERE user_id = $1`, userID).Scan(&income)
	if err != nil {
		return model.LedgerFacts{}, notFoundOr(err, "find user %d", userID)
	}
	facts.MonthlyIncome = decimal.Zero
	if income.Valid {
		facts.MonthlyIncome = income.Decimal
	}

	// 2. Active totals.
	err = s.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(credit_limit), 0), COALESCE(SUM(current_balance), 0), COUNT(*)
		FROM credit_accounts
		WHERE user_id = $1 AND status = 'active'`, userID,
	).Scan(&facts.ActiveCreditLimit, &facts.ActiveBalance, &facts.ActiveAccounts)
	if err != nil {
		return model.LedgerFacts{}, fmt.Errorf("sum active accounts: %w", err)
	}

	// 3. Facilities that exist: active or closed.
	accounts, err := s.q.Query(ctx, `
		SELECT account_type, opened_date
		FROM credit_accounts
		WHERE user_id = $1 AND status IN ('active', 'closed')
		ORDER BY account_id`, userID)
	if err != nil {
		return model.LedgerFacts{}, fmt.Errorf("query account facts: %w", err)
	}
	for accounts.Next() {
		var (
			typeStr  string
			openedAt time.Time
		)
		if err := accounts.Scan(&typeStr, &openedAt); err != nil {
			accounts.Close()
			return model.LedgerFacts{}, fmt.Errorf("scan account fact: %w", err)
		}
		accountType, err := valueobject.NewAccountType(typeStr)
		if err != nil {
			accounts.Close()
			return model.LedgerFacts{}, fmt.Errorf("parse account type: %w", err)
		}
		facts.Accounts = append(facts.Accounts, model.AccountFact{Type: accountType, OpenedAt: openedAt})
	}
	accounts.Close()
	if err := accounts.Err(); err != nil {
		return model.LedgerFacts{}, fmt.Errorf("read account facts: %w", err)
	}

	// 4. Every obligation on the user's accounts.
	payments, err := s.q.Query(ctx, `
		SELECT p.due_date, p.paid_date, p.amount_due, p.amount_paid, p.status
		FROM payments p
		JOIN credit_accounts ca ON ca.account_id = p.account_id
		WHERE ca.user_id = $1
		ORDER BY p.payment_id`, userID)
	if err != nil {
		return model.LedgerFacts{}, fmt.Errorf("query payment facts: %w", err)
	}
	defer payments.Close()
	for payments.Next() {
		var (
			f         model.PaymentFact
			statusStr string
		)
		if err := payments.Scan(&f.DueDate, &f.PaidDate, &f.AmountDue, &f.AmountPaid, &statusStr); err != nil {
			return model.LedgerFacts{}, fmt.Errorf("scan payment fact: %w", err)
		}
		if f.Status, err = valueobject.NewPaymentStatus(statusStr); err != nil {
			return model.LedgerFacts{}, fmt.Errorf("parse payment status: %w", err)
		}
		facts.Payments = append(facts.Payments, f)
	}
	return facts, payments.Err()
}
