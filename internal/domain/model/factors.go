package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Factor keys as persisted in a snapshot's factor object.
const (
	FactorPaymentHistory     = "payment_history"
	FactorCreditUtilization  = "credit_utilization"
	FactorCreditAge          = "credit_age"
	FactorInquiries          = "inquiries"
	FactorDebtToIncome       = "debt_to_income"
	FactorDelinquencies      = "delinquencies"
	FactorCreditMix          = "credit_mix"
	FactorIncomeStability    = "income_stability"
	FactorEmploymentHistory  = "employment_history"
	FactorCollateralStrength = "collateral_strength"
)

// FactorSet holds the 0–100 sub-scores recorded with a snapshot. The first
// seven are derived from the ledger on every computation; the last three are
// only ever carried forward. Extra preserves unknown numeric keys so that
// snapshots written by other versions round-trip.
type FactorSet struct {
	PaymentHistory     int
	CreditUtilization  int
	CreditAge          int
	Inquiries          int
	DebtToIncome       int
	Delinquencies      int
	CreditMix          int
	IncomeStability    int
	EmploymentHistory  int
	CollateralStrength int
	Extra              map[string]float64
}

// Bounds shared by every named factor.
const (
	FactorMin = 0
	FactorMax = 100
)

// DefaultFactorSet is the factor set of an applicant with no history.
func DefaultFactorSet() FactorSet {
	return FactorSet{
		PaymentHistory:     70,
		CreditUtilization:  100,
		CreditAge:          45,
		Inquiries:          80,
		DebtToIncome:       50,
		Delinquencies:      100,
		CreditMix:          55,
		IncomeStability:    70,
		EmploymentHistory:  72,
		CollateralStrength: 60,
	}
}

func (f *FactorSet) fields() map[string]*int {
	return map[string]*int{
		FactorPaymentHistory:     &f.PaymentHistory,
		FactorCreditUtilization:  &f.CreditUtilization,
		FactorCreditAge:          &f.CreditAge,
		FactorInquiries:          &f.Inquiries,
		FactorDebtToIncome:       &f.DebtToIncome,
		FactorDelinquencies:      &f.Delinquencies,
		FactorCreditMix:          &f.CreditMix,
		FactorIncomeStability:    &f.IncomeStability,
		FactorEmploymentHistory:  &f.EmploymentHistory,
		FactorCollateralStrength: &f.CollateralStrength,
	}
}

// Value returns the factor stored under key, named or extra.
func (f FactorSet) Value(key string) (float64, bool) {
	if p, ok := f.fields()[key]; ok {
		return float64(*p), true
	}
	v, ok := f.Extra[key]
	return v, ok
}

// ToMap flattens the set into its persisted form.
func (f FactorSet) ToMap() map[string]float64 {
	out := make(map[string]float64, 10+len(f.Extra))
	for k, v := range f.Extra {
		out[k] = v
	}
	for k, p := range f.fields() {
		out[k] = float64(*p)
	}
	return out
}

// FactorSetFromMap decodes a persisted factor object. Missing or
// non-numeric named factors fall back to DefaultFactorSet; unknown numeric
// keys land in Extra.
func FactorSetFromMap(raw map[string]any) FactorSet {
	fs := DefaultFactorSet()
	fields := fs.fields()
	for k, v := range raw {
		n, ok := toNumber(v)
		if !ok {
			continue
		}
		if p, named := fields[k]; named {
			*p = int(math.Round(math.Max(FactorMin, math.Min(FactorMax, n))))
			continue
		}
		if fs.Extra == nil {
			fs.Extra = make(map[string]float64)
		}
		fs.Extra[k] = n
	}
	return fs
}

// MarshalJSON writes the flat factor object.
func (f FactorSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.ToMap())
}

// UnmarshalJSON reads a flat factor object. A JSON null yields the defaults.
func (f *FactorSet) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*f = FactorSetFromMap(raw)
	return nil
}

func toNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case int32:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
