package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-api/internal/application/usecase"
	"github.com/seu-usuario/gestor-api/internal/domain"
)

func novoProdutoUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(newFakeProductRepo(), newFakeSequence())
}

func corpoProduto(sku string) map[string]any {
	return map[string]any{
		"sku":       sku,
		"name":      "Caneca",
		"category":  "Masculino",
		"costPrice": 10.0,
		"salePrice": 25.0,
	}
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := novoProdutoUC()

	_, err := uc.Create(corpoProduto("CAN-001"))
	require.NoError(t, err)

	_, err = uc.Create(corpoProduto("can-001")) // normaliza para maiúsculas
	var cerr *domain.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "sku", cerr.Field)
	assert.Equal(t, "Já existe um produto cadastrado com esse SKU.", cerr.Message)
}

func TestProductCreate_PrecosInvalidos(t *testing.T) {
	uc := novoProdutoUC()

	_, err := uc.Create(map[string]any{
		"sku": "CAN-002", "name": "Caneca", "category": "Masculino",
		"costPrice": 30.0, "salePrice": 20.0,
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Preço de venda não pode ser menor que o preço de custo."}, verr.Errors)
}

func TestProductGetByID_NaoEncontrado(t *testing.T) {
	uc := novoProdutoUC()
	_, err := uc.GetByID(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_PreservaCreatedAt(t *testing.T) {
	uc := novoProdutoUC()

	criado, err := uc.Create(corpoProduto("CAN-001"))
	require.NoError(t, err)

	atualizado, err := uc.Update(criado.ID, corpoProduto("CAN-001"))
	require.NoError(t, err)
	assert.Equal(t, criado.CreatedAt, atualizado.CreatedAt)
	assert.Equal(t, criado.ID, atualizado.ID)
}
