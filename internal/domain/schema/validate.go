package schema

import (
	"regexp"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/expense"
)

// Result resultado da validação de uma entidade: lista ordenada de mensagens
// voltadas ao usuário, uma por regra violada. As regras são avaliadas de
// forma independente (sem curto-circuito) e a ordem segue a declaração.
type Result struct {
	Valid  bool
	Errors []string
}

func result(errors []string) Result {
	return Result{Valid: len(errors) == 0, Errors: errors}
}

// emailRe shape básico local@domínio.tld.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateCustomer valida o cliente normalizado.
func ValidateCustomer(c *entity.Customer) Result {
	var errors []string

	if c.Name == "" {
		errors = append(errors, "Nome é obrigatório.")
	}
	if c.Phone == "" {
		errors = append(errors, "Telefone é obrigatório.")
	}
	if c.Email != "" && !emailRe.MatchString(c.Email) {
		errors = append(errors, "E-mail inválido.")
	}

	return result(errors)
}

// ValidateProduct valida o produto normalizado.
func ValidateProduct(p *entity.Product) Result {
	var errors []string

	if p.Name == "" {
		errors = append(errors, "Nome do produto é obrigatório.")
	}
	if p.Category == "" {
		errors = append(errors, "Categoria é obrigatória.")
	}
	if p.SKU == "" {
		errors = append(errors, "SKU é obrigatório.")
	}
	if !p.CostPrice.IsPositive() {
		errors = append(errors, "Preço de custo inválido.")
	}
	if !p.SalePrice.IsPositive() {
		errors = append(errors, "Preço de venda inválido.")
	}
	if p.SalePrice.LessThan(p.CostPrice) {
		errors = append(errors, "Preço de venda não pode ser menor que o preço de custo.")
	}

	return result(errors)
}

// ValidateSupplier valida o fornecedor normalizado.
func ValidateSupplier(s *entity.Supplier) Result {
	var errors []string

	if s.CNPJ == "" {
		errors = append(errors, "CNPJ é obrigatório.")
	}
	if s.State == "" {
		errors = append(errors, "Estado é obrigatório.")
	}
	if s.TradeName == "" {
		errors = append(errors, "Nome fantasia é obrigatório.")
	}

	return result(errors)
}

// ValidateExpense valida a despesa normalizada. Uma despesa de parcela mensal
// exige quantidade de parcelas >= 1.
func ValidateExpense(e *entity.Expense) Result {
	var errors []string

	if e.DueDate == nil {
		errors = append(errors, "A data de vencimento é obrigatória.")
	}
	if e.Category == "" {
		errors = append(errors, "A categoria é obrigatória.")
	}
	if e.Type == "" {
		errors = append(errors, "O tipo é obrigatório.")
	}
	if e.PaymentMethod == "" {
		errors = append(errors, "O método de pagamento é obrigatório.")
	}
	if !e.Value.IsPositive() {
		errors = append(errors, "O valor deve ser maior que zero.")
	}
	if e.Type == expense.TypeMonthly && e.Installments < 1 {
		errors = append(errors, "Informe a quantidade de parcelas.")
	}

	return result(errors)
}
