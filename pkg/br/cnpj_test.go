package br_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seu-usuario/gestor-api/pkg/br"
)

func TestNormalizeCNPJ(t *testing.T) {
	assert.Equal(t, "11222333000181", br.NormalizeCNPJ("11.222.333/0001-81"))
	assert.Equal(t, "11222333000181", br.NormalizeCNPJ("11222333000181"))
	assert.Equal(t, "", br.NormalizeCNPJ("abc"))
}

func TestValidateCNPJ_Valido(t *testing.T) {
	assert.NoError(t, br.ValidateCNPJ("11222333000181"))
	assert.NoError(t, br.ValidateCNPJ("11.222.333/0001-81"), "pontuação é aceita")
}

func TestValidateCNPJ_TamanhoErrado(t *testing.T) {
	assert.Error(t, br.ValidateCNPJ(""))
	assert.Error(t, br.ValidateCNPJ("123"))
	assert.Error(t, br.ValidateCNPJ("112223330001811"))
}

func TestValidateCNPJ_DigitosVerificadoresErrados(t *testing.T) {
	assert.Error(t, br.ValidateCNPJ("11222333000180"), "segundo dígito errado")
	assert.Error(t, br.ValidateCNPJ("11222333000191"), "primeiro dígito errado")
}

// Sequências com todos os dígitos iguais passam no módulo 11 mas não são CNPJs.
func TestValidateCNPJ_TodosIguais(t *testing.T) {
	assert.Error(t, br.ValidateCNPJ("00000000000000"))
	assert.Error(t, br.ValidateCNPJ("11111111111111"))
}
