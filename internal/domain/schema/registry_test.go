package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

func TestByKind(t *testing.T) {
	for kind, collection := range map[string]string{
		"clientes":     "customers",
		"produtos":     "products",
		"fornecedores": "suppliers",
		"despesas":     "expenses",
	} {
		s := schema.ByKind(kind)
		require.NotNil(t, s, "schema %q deve existir", kind)
		assert.Equal(t, collection, s.Collection)
	}
}

func TestByKind_DesconhecidoDevolveNil(t *testing.T) {
	assert.Nil(t, schema.ByKind("estoque"))
	assert.Nil(t, schema.ByKind(""))
}

func TestByCollection(t *testing.T) {
	s := schema.ByCollection("suppliers")
	require.NotNil(t, s)
	assert.Equal(t, "fornecedores", s.Key)

	assert.Nil(t, schema.ByCollection("warehouses"))
}

func TestSchemaField(t *testing.T) {
	f := schema.Expense.Field("paymentMethod")
	require.NotNil(t, f)
	assert.Equal(t, schema.TypeSelect, f.Type)
	assert.Equal(t, schema.ExpensePaymentMethods, f.Options)

	assert.Nil(t, schema.Expense.Field("inexistente"))
}

// Os campos de busca de fornecedor incluem a razão social (name), presente no
// schema: a busca nunca referencia campo inexistente.
func TestSearchFieldsExistemNoSchema(t *testing.T) {
	for _, s := range []*schema.Schema{&schema.Customer, &schema.Product, &schema.Supplier, &schema.Expense} {
		for _, field := range s.SearchFields {
			assert.NotNil(t, s.Field(field), "%s: campo de busca %q deve existir no schema", s.Key, field)
		}
	}
}
