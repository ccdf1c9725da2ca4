package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vittoria-bank/uber-trip-report/internal/parser"
	"github.com/vittoria-bank/uber-trip-report/internal/textutil"
)

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5 de março de 2024", "20240305"},
		{"24 de janeiro de 2023", "20230124"},
		{"1 de fev. de 2024", "20240201"},
		{"31 de dezembro de 2025", "20251231"},
		{"março de 2024", ""},         // malformed, no day
		{"5 de brumário de 2024", ""}, // unknown month
		{"5 de fe de 2024", ""},       // month token too short
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parser.ParseDateKey(textutil.Normalize(tc.in)), "ParseDateKey(%q)", tc.in)
	}
}
