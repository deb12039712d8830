package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApplicantLookup(t *testing.T) {
	tests := []struct {
		raw  string
		want ApplicantLookup
	}{
		{raw: "APP-00042", want: ApplicantLookup{UserID: 42}},
		{raw: "app-7", want: ApplicantLookup{UserID: 7}},
		{raw: " 15 ", want: ApplicantLookup{UserID: 15}},
		{raw: "asha", want: ApplicantLookup{Username: "asha"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseApplicantLookup(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "   ", "0", "APP-00000"} {
		_, err := ParseApplicantLookup(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestUserDisplay(t *testing.T) {
	u := User{ID: 42, Username: "asha"}
	assert.Equal(t, "APP-00042", u.ApplicantID())
	assert.Equal(t, "asha", u.DisplayName())

	u.FullName = "Asha Rai"
	assert.Equal(t, "Asha Rai", u.DisplayName())
}
