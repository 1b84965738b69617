package schema_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/expense"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

func TestValidateCustomer_Valido(t *testing.T) {
	res := schema.ValidateCustomer(&entity.Customer{Name: "Maria Silva", Phone: "11999990000"})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

// As regras são avaliadas de forma independente e a ordem das mensagens segue
// a declaração; a resposta HTTP preserva essa ordem.
func TestValidateCustomer_AcumulaErrosNaOrdem(t *testing.T) {
	res := schema.ValidateCustomer(&entity.Customer{Email: "sem-arroba"})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"Nome é obrigatório.",
		"Telefone é obrigatório.",
		"E-mail inválido.",
	}, res.Errors)
}

func TestValidateCustomer_EmailOpcional(t *testing.T) {
	res := schema.ValidateCustomer(&entity.Customer{Name: "Maria", Phone: "11999990000", Email: ""})
	assert.True(t, res.Valid, "e-mail vazio não é erro; só formato inválido é")
}

func TestValidateProduct_PrecoVendaMenorQueCusto(t *testing.T) {
	res := schema.ValidateProduct(&entity.Product{
		Name:      "Caneca",
		Category:  "Cozinha",
		SKU:       "CAN-001",
		CostPrice: decimal.NewFromInt(20),
		SalePrice: decimal.NewFromInt(10),
	})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Preço de venda não pode ser menor que o preço de custo."}, res.Errors)
}

func TestValidateProduct_TodosObrigatorios(t *testing.T) {
	res := schema.ValidateProduct(&entity.Product{})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"Nome do produto é obrigatório.",
		"Categoria é obrigatória.",
		"SKU é obrigatório.",
		"Preço de custo inválido.",
		"Preço de venda inválido.",
	}, res.Errors)
}

func TestValidateSupplier(t *testing.T) {
	res := schema.ValidateSupplier(&entity.Supplier{})
	assert.Equal(t, []string{
		"CNPJ é obrigatório.",
		"Estado é obrigatório.",
		"Nome fantasia é obrigatório.",
	}, res.Errors)

	ok := schema.ValidateSupplier(&entity.Supplier{CNPJ: "11222333000181", State: "SP", TradeName: "Padaria do Zé"})
	assert.True(t, ok.Valid)
}

func TestValidateExpense_ParcelaMensalExigeParcelas(t *testing.T) {
	venc := dia(10, 9, 2026)
	res := schema.ValidateExpense(&entity.Expense{
		DueDate:       &venc,
		Category:      "Fornecedores",
		Type:          expense.TypeMonthly,
		PaymentMethod: "Pix",
		Value:         decimal.NewFromInt(100),
		Installments:  0,
	})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Informe a quantidade de parcelas."}, res.Errors)
}

func TestValidateExpense_PagamentoUnicoNaoExigeParcelas(t *testing.T) {
	venc := dia(10, 9, 2026)
	res := schema.ValidateExpense(&entity.Expense{
		DueDate:       &venc,
		Category:      "Impostos",
		Type:          expense.TypeSingle,
		PaymentMethod: "Boleto",
		Value:         decimal.NewFromInt(50),
	})
	assert.True(t, res.Valid)
}

func TestValidateExpense_ValorZero(t *testing.T) {
	venc := dia(10, 9, 2026)
	res := schema.ValidateExpense(&entity.Expense{
		DueDate:       &venc,
		Category:      "Impostos",
		Type:          expense.TypeSingle,
		PaymentMethod: "Boleto",
	})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "O valor deve ser maior que zero.")
}
