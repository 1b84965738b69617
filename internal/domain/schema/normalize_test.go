package schema_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-api/internal/domain/expense"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

func dia(d, m, ano int) time.Time {
	return time.Date(ano, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func TestNormalizeCustomer(t *testing.T) {
	c := schema.NormalizeCustomer(map[string]any{
		"name":      "  Maria Silva  ",
		"email":     "maria@example.com",
		"phone":     "11999990000",
		"birthdate": "05/03/1990",
	})

	assert.Equal(t, "Maria Silva", c.Name, "textos recebem trim")
	require.NotNil(t, c.Birthdate)
	assert.Equal(t, dia(5, 3, 1990), *c.Birthdate)
	assert.NotNil(t, c.Orders, "pedidos ausentes viram sequência vazia")
	assert.Empty(t, c.Orders)
}

func TestNormalizeCustomer_DataInvalidaViraNil(t *testing.T) {
	c := schema.NormalizeCustomer(map[string]any{"name": "x", "birthdate": "1990-03-05T00:00"})
	assert.Nil(t, c.Birthdate, "data fora de DD/MM/YYYY é descartada sem erro")

	c = schema.NormalizeCustomer(map[string]any{"name": "x", "birthdate": 19900305})
	assert.Nil(t, c.Birthdate, "tipo não textual é descartado sem erro")
}

func TestNormalizeProduct(t *testing.T) {
	p := schema.NormalizeProduct(map[string]any{
		"sku":       " abc-001 ",
		"name":      "Caneca",
		"category":  "Cozinha",
		"costPrice": 10.5,
		"salePrice": "25.90",
		"stock":     float64(7), // números JSON chegam como float64
	})

	assert.Equal(t, "ABC-001", p.SKU, "SKU sobe para maiúsculas")
	assert.True(t, p.CostPrice.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, p.SalePrice.Equal(decimal.RequireFromString("25.90")), "valores string também são aceitos")
	assert.Equal(t, int64(7), p.Stock)
}

func TestNormalizeProduct_NumeroInvalidoViraZero(t *testing.T) {
	p := schema.NormalizeProduct(map[string]any{"costPrice": "abc", "salePrice": nil})
	assert.True(t, p.CostPrice.IsZero())
	assert.True(t, p.SalePrice.IsZero())
}

func TestNormalizeExpense_GeraParcelasQuandoMensal(t *testing.T) {
	e := schema.NormalizeExpense(map[string]any{
		"description":   "Aluguel",
		"category":      "Instalações",
		"type":          expense.TypeMonthly,
		"paymentMethod": "Boleto",
		"value":         300.0,
		"installments":  3.0,
		"dueDate":       "10/09/2026",
	}, expense.LastInstallmentAbsorbs)

	require.Len(t, e.InstallmentsData, 3)
	assert.Equal(t, dia(10, 9, 2026), e.InstallmentsData[0].DueDate)
	assert.Equal(t, dia(10, 11, 2026), e.InstallmentsData[2].DueDate)
	assert.Equal(t, 3, e.Installments)
}

func TestNormalizeExpense_SemParcelasQuandoUnico(t *testing.T) {
	e := schema.NormalizeExpense(map[string]any{
		"type":    expense.TypeSingle,
		"value":   50.0,
		"dueDate": "10/09/2026",
	}, expense.LastInstallmentAbsorbs)

	assert.NotNil(t, e.InstallmentsData)
	assert.Empty(t, e.InstallmentsData, "pagamento único não tem cronograma")
}

// Status e histórico nunca são aceitos do chamador: são derivados pelo
// orquestrador.
func TestNormalizeExpense_IgnoraStatusEHistoricoDoCliente(t *testing.T) {
	e := schema.NormalizeExpense(map[string]any{
		"type":    expense.TypeSingle,
		"status":  "Pago",
		"history": []any{map[string]any{"action": "forjada"}},
	}, expense.LastInstallmentAbsorbs)

	assert.Empty(t, e.Status)
	assert.Empty(t, e.History)
}

func TestNormalizeOrder_Defaults(t *testing.T) {
	now := dia(15, 8, 2026)
	order := schema.NormalizeOrder(map[string]any{}, now)

	assert.Empty(t, order.OrderID, "sem orderId; quem anexa decide o identificador")
	assert.Equal(t, now, order.Date)
	assert.Equal(t, "pendente", order.Status)
	assert.Equal(t, "Website", order.Channel)
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
	assert.True(t, order.Total.IsZero())
}

func TestNormalizeOrder_DataISO(t *testing.T) {
	order := schema.NormalizeOrder(map[string]any{
		"orderId": "abc-1",
		"date":    "2026-08-10",
		"total":   150.0,
		"items":   []any{map[string]any{"sku": "CAN-001", "qty": 2.0}},
	}, dia(15, 8, 2026))

	assert.Equal(t, "abc-1", order.OrderID)
	assert.Equal(t, dia(10, 8, 2026), order.Date, "datas ISO do front são aceitas")
	require.Len(t, order.Items, 1)
	assert.Equal(t, "CAN-001", order.Items[0]["sku"])
}
