package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345678000195", OnlyDigits("12.345.678/0001-95"))
	assert.Equal(t, "52998224725", OnlyDigits("529.982.247-25"))
	assert.Equal(t, "", OnlyDigits("abc-/. "))
}

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"valid bare digits", "52998224725", true},
		{"valid formatted", "529.982.247-25", true},
		{"wrong check digit", "52998224724", false},
		{"all same digits", "11111111111", false},
		{"too short", "5299822472", false},
		{"too long", "529982247250", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidCPF(tt.cpf))
		})
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"valid bare digits", "11222333000181", true},
		{"valid formatted", "11.222.333/0001-81", true},
		{"wrong check digit", "11222333000182", false},
		{"all same digits", "00000000000000", false},
		{"too short", "1122233300018", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidCNPJ(tt.cnpj))
		})
	}
}
