package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vittoria-bank/uber-trip-report/internal/textutil"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Informações da viagem", "informacoes da viagem"},
		{"  Preço   da\tViagem ", "preco da viagem"},
		{"PROMOÇÃO", "promocao"},
		{"Você viajou com João", "voce viajou com joao"},
		{"R$ 5,00", "r$ 5,00"},
		{"abc�def", "abcdef"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, textutil.Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestCleanKeepsCaseAndAccents(t *testing.T) {
	assert.Equal(t, "Avenida São João, 100", textutil.Clean("  Avenida   São João,\t100 "))
	assert.Equal(t, "UberX", textutil.Clean("\uFEFFUberX\uFFFD"))
	assert.Equal(t, "", textutil.Clean("   \t  "))
}
