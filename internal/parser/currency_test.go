package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittoria-bank/uber-trip-report/internal/parser"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"12,50", 12.5},
		{"12.50", 12.5},
		{"-10,00", -10},
		{"R$ 7,90", 7.9},
	}
	for _, tc := range tests {
		got := parser.ParseCurrency(tc.in)
		require.NotNil(t, got, "ParseCurrency(%q)", tc.in)
		assert.InDelta(t, tc.want, *got, 1e-9, "ParseCurrency(%q)", tc.in)
	}
}

func TestParseCurrencyRejectsNonNumeric(t *testing.T) {
	assert.Nil(t, parser.ParseCurrency(""))
	assert.Nil(t, parser.ParseCurrency("sem valor aqui"))
	assert.Nil(t, parser.ParseCurrency("--"))
}

func TestExtractCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"Total R$ 1.234,56", 1234.56},
		{"1.234,56", 1234.56},
		{"1234,56", 1234.56},
		// The R$ tag captures the number only; the discount sign is applied
		// at render time.
		{"-R$ 0,75", 0.75},
		// No tag at all falls back to the whole line, keeping the sign.
		{"-0,75", -0.75},
	}
	for _, tc := range tests {
		got := parser.ExtractCurrency(tc.in)
		require.NotNil(t, got, "ExtractCurrency(%q)", tc.in)
		assert.InDelta(t, tc.want, *got, 1e-9, "ExtractCurrency(%q)", tc.in)
	}
	assert.Nil(t, parser.ExtractCurrency("Pagamentos"))
}
