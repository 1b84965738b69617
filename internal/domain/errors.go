package domain

import (
	"errors"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrUserNotFound = errors.New("usuário não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("não autorizado")
	ErrForbidden    = errors.New("acesso negado")
	ErrRateLimited  = errors.New("limite de consultas excedido")
)

// ValidationError carrega a lista ordenada de mensagens produzida pelo
// validador de uma entidade. A ordem das mensagens segue a ordem de
// declaração das regras e deve ser preservada até a resposta HTTP.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "dados inválidos: " + strings.Join(e.Errors, "; ")
}

// ConflictError indica violação de unicidade de uma chave natural
// (telefone, SKU, CNPJ), apontando o campo em conflito.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
