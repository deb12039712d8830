package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
)

const userColumns = `
	user_id, username, COALESCE(full_name, ''), dob, COALESCE(phone, ''),
	COALESCE(address, ''), monthly_income, COALESCE(employment_type, '')`

// FindUser resolves a user by id or, case-insensitively, by username.
func (s *txStore) FindUser(ctx context.Context, lookup model.ApplicantLookup) (model.User, error) {
	var row scannable
	if lookup.UserID > 0 {
		row = s.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, lookup.UserID)
	} else {
		row = s.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1) LIMIT 1`, lookup.Username)
	}

	var (
		u      model.User
		dob    *time.Time
		income decimal.NullDecimal
	)
	err := row.Scan(&u.ID, &u.Username, &u.FullName, &dob, &u.Phone, &u.Address, &income, &u.EmploymentType)
	if err != nil {
		return model.User{}, notFoundOr(err, "find user %s", lookup)
	}
	u.DateOfBirth = dob
	if income.Valid {
		u.MonthlyIncome = &income.Decimal
	}
	return u, nil
}

// UpdateEmployment stores the employment details captured on loan intake.
func (s *txStore) UpdateEmployment(ctx context.Context, userID int64, employmentType string, monthlyIncome decimal.Decimal) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE users SET employment_type = $1, monthly_income = $2 WHERE user_id = $3`,
		employmentType, monthlyIncome, userID,
	)
	if err != nil {
		return fmt.Errorf("update user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", userID, model.ErrNotFound)
	}
	return nil
}
