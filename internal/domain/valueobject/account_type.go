package valueobject

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccountType is the product kind of a credit account.
type AccountType struct {
	value string
}

const (
	accountTypeLoanGeneral     = "loan_general"
	accountTypeLoanEMI         = "loan_emi"
	accountTypeCreditCardUsage = "credit_card_usage"
)

var (
	AccountTypeLoanGeneral     = AccountType{value: accountTypeLoanGeneral}
	AccountTypeLoanEMI         = AccountType{value: accountTypeLoanEMI}
	AccountTypeCreditCardUsage = AccountType{value: accountTypeCreditCardUsage}
)

var validAccountTypes = map[string]AccountType{
	accountTypeLoanGeneral:     AccountTypeLoanGeneral,
	accountTypeLoanEMI:         AccountTypeLoanEMI,
	accountTypeCreditCardUsage: AccountTypeCreditCardUsage,
}

// loanCategories maps the short category accepted on intake to account types.
var loanCategories = map[string]AccountType{
	"general": AccountTypeLoanGeneral,
	"emi":     AccountTypeLoanEMI,
	"cc":      AccountTypeCreditCardUsage,
}

var titleCaser = cases.Title(language.English)

// NewAccountType creates an AccountType from a raw string.
func NewAccountType(s string) (AccountType, error) {
	v, ok := validAccountTypes[s]
	if !ok {
		return AccountType{}, fmt.Errorf("invalid account type: %q", s)
	}
	return v, nil
}

// AccountTypeFromCategory resolves an intake category (general, emi, cc).
func AccountTypeFromCategory(category string) (AccountType, error) {
	v, ok := loanCategories[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return AccountType{}, fmt.Errorf("invalid loan category: %q", category)
	}
	return v, nil
}

// String returns the string representation of the type.
func (t AccountType) String() string { return t.value }

// IsZero returns true if the type has not been initialised.
func (t AccountType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t AccountType) Equal(other AccountType) bool { return t.value == other.value }

// RequiresTenure reports whether intake must carry a tenure in months.
func (t AccountType) RequiresTenure() bool { return t.value != accountTypeCreditCardUsage }

// Title is the display label, e.g. "Loan Emi".
func (t AccountType) Title() string {
	return titleCaser.String(strings.ReplaceAll(t.value, "_", " "))
}
