package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")
	assert.Equal(t, "12.35", FormatWithPrecision(amount, 2))
	assert.Equal(t, "12", FormatWithPrecision(amount, 0))
}

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		in        string
		precision int
		want      string
	}{
		{"370000", 2, "370,000.00"},
		{"999", 0, "999"},
		{"1000", 0, "1,000"},
		{"1234567.891", 2, "1,234,567.89"},
		{"-5550.5", 1, "-5,550.5"},
		{"0", 2, "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatGrouped(decimal.RequireFromString(tt.in), tt.precision), tt.in)
	}
}
