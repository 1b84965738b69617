// Package br valida documentos fiscais brasileiros usados pelos cadastros.
package br

import (
	"fmt"
	"unicode"
)

// Pesos dos dois dígitos verificadores do CNPJ (módulo 11, Receita Federal).
// Aplicam-se da esquerda para a direita sobre os 12 e 13 primeiros dígitos.
var (
	cnpjWeightsFirst  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// NormalizeCNPJ remove pontuação e devolve apenas os dígitos do CNPJ.
// "12.345.678/0001-95" vira "12345678000195".
func NormalizeCNPJ(s string) string {
	return string(extractDigits(s))
}

// ValidateCNPJ valida que o CNPJ (com ou sem pontuação) tem 14 dígitos e
// dígitos verificadores corretos segundo o algoritmo módulo 11.
func ValidateCNPJ(s string) error {
	digits := extractDigits(s)
	if len(digits) != 14 {
		return fmt.Errorf("br: CNPJ deve ter 14 dígitos, foram encontrados %d", len(digits))
	}
	allEqual := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		// Sequências como 00000000000000 passam no módulo 11 mas não são CNPJs.
		return fmt.Errorf("br: CNPJ com todos os dígitos iguais é inválido")
	}

	first := computeCNPJDigit(digits[:12], cnpjWeightsFirst[:])
	if digits[12] != first {
		return fmt.Errorf("br: primeiro dígito verificador do CNPJ inválido: esperado %c, recebido %c", first, digits[12])
	}
	second := computeCNPJDigit(digits[:13], cnpjWeightsSecond[:])
	if digits[13] != second {
		return fmt.Errorf("br: segundo dígito verificador do CNPJ inválido: esperado %c, recebido %c", second, digits[13])
	}
	return nil
}

func computeCNPJDigit(base []byte, weights []int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
