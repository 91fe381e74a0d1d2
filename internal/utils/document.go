package utils

import "strings"

// OnlyDigits strips every non-digit rune. Documents, phones and postal codes
// are stored in this normalized form.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// IsValidCPF verifies an 11-digit CPF using its two check digits. Formatting
// characters are stripped before validation.
func IsValidCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 || allSame(digits) {
		return false
	}

	weights1 := []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	weights2 := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	if checkDigit(digits, weights1) != int(digits[9]-'0') {
		return false
	}
	return checkDigit(digits, weights2) == int(digits[10]-'0')
}

// IsValidCNPJ verifies a 14-digit CNPJ using its two check digits. Formatting
// characters are stripped before validation.
func IsValidCNPJ(cnpj string) bool {
	digits := OnlyDigits(cnpj)
	if len(digits) != 14 || allSame(digits) {
		return false
	}

	weights1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	weights2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	if checkDigit(digits, weights1) != int(digits[12]-'0') {
		return false
	}
	return checkDigit(digits, weights2) == int(digits[13]-'0')
}
