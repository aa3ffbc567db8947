package entities

import (
	"errors"
	"strings"
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

var (
	ErrTaxIDLength   = errors.New("tax id must have 11 (CPF) or 14 (CNPJ) digits")
	ErrTaxIDChecksum = errors.New("tax id checksum is invalid")
)

// NormalizeTaxID strips every non-digit character.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateTaxID normalizes raw and checks it as a CPF or CNPJ depending on length.
// It returns the normalized digits.
func ValidateTaxID(raw string) (string, error) {
	digits := NormalizeTaxID(raw)
	switch len(digits) {
	case cpfLength:
		if !validCPF(digits) {
			return "", ErrTaxIDChecksum
		}
	case cnpjLength:
		if !validCNPJ(digits) {
			return "", ErrTaxIDChecksum
		}
	default:
		return "", ErrTaxIDLength
	}
	return digits, nil
}

func validCPF(d string) bool {
	if allSame(d) {
		return false
	}
	return checkDigit(d[:9], []int{10, 9, 8, 7, 6, 5, 4, 3, 2}) == int(d[9]-'0') &&
		checkDigit(d[:10], []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}) == int(d[10]-'0')
}

func validCNPJ(d string) bool {
	if allSame(d) {
		return false
	}
	first := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	second := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return checkDigit(d[:12], first) == int(d[12]-'0') &&
		checkDigit(d[:13], second) == int(d[13]-'0')
}

// checkDigit computes a mod-11 verification digit.
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

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
