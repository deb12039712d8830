package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorSetFromMap(t *testing.T) {
	fs := FactorSetFromMap(map[string]any{
		FactorInquiries:       json.Number("64"),
		FactorIncomeStability: 81.6,
		FactorCreditMix:       "not a number",
		"bureau_adjustment":   12.5,
		"notes":               "ignored",
	})

	assert.Equal(t, 64, fs.Inquiries)
	assert.Equal(t, 82, fs.IncomeStability)
	assert.Equal(t, DefaultFactorSet().CreditMix, fs.CreditMix, "non-numeric falls back to default")
	assert.Equal(t, DefaultFactorSet().PaymentHistory, fs.PaymentHistory, "missing falls back to default")
	assert.Equal(t, map[string]float64{"bureau_adjustment": 12.5}, fs.Extra)
}

func TestFactorSetFromMapClampsNamedFactors(t *testing.T) {
	var fs FactorSet
	require.NoError(t, json.Unmarshal([]byte(`{
		"income_stability": 250,
		"employment_history": -40,
		"collateral_strength": 1e300,
		"inquiries": 1e300
	}`), &fs))

	assert.Equal(t, 100, fs.IncomeStability)
	assert.Equal(t, 0, fs.EmploymentHistory)
	assert.Equal(t, 100, fs.CollateralStrength)
	assert.Equal(t, 100, fs.Inquiries)
}

func TestFactorSetJSONRoundTrip(t *testing.T) {
	fs := DefaultFactorSet()
	fs.Inquiries = 72
	fs.Extra = map[string]float64{"bureau_adjustment": 3}

	data, err := json.Marshal(fs)
	require.NoError(t, err)

	var flat map[string]float64
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Len(t, flat, 11)
	assert.Equal(t, 72.0, flat[FactorInquiries])

	var decoded FactorSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, fs, decoded)
}

func TestFactorSetNullDecodesToDefaults(t *testing.T) {
	var fs FactorSet
	require.NoError(t, json.Unmarshal([]byte("null"), &fs))
	assert.Equal(t, DefaultFactorSet(), fs)
}

func TestFactorSetValue(t *testing.T) {
	fs := DefaultFactorSet()
	fs.Extra = map[string]float64{"x": 1.5}

	v, ok := fs.Value(FactorCollateralStrength)
	assert.True(t, ok)
	assert.Equal(t, 60.0, v)

	v, ok = fs.Value("x")
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	_, ok = fs.Value("missing")
	assert.False(t, ok)
}
