// Package money parses and normalises the rupee amounts accepted by the
// credit service. All amounts are shopspring decimals; there is one currency.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance used when comparing balances.
var Epsilon = decimal.New(1, -6)

// ErrInvalidAmount is returned when an amount cannot be parsed.
var ErrInvalidAmount = errors.New("money: invalid amount")

var amountReplacer = strings.NewReplacer(
	"Rs.", "",
	"rs.", "",
	"RS.", "",
	"₹", "",
	",", "",
	" ", "",
)

// ParseAmount accepts "1000", "1,000.50", "Rs. 1,000" and returns the value
// rounded to two places.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := amountReplacer.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Round(d), nil
}

// Round rounds an amount to two decimal places, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsZero reports whether d is within Epsilon of zero.
func IsZero(d decimal.Decimal) bool {
	return d.Abs().LessThan(Epsilon)
}

// Exceeds reports whether a is greater than b by more than Epsilon.
func Exceeds(a, b decimal.Decimal) bool {
	return a.Sub(b).GreaterThan(Epsilon)
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
