package repository

import "github.com/seu-usuario/gestor-api/internal/domain/entity"

// ProductRepository define o porto de persistência de produtos.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetBySKU busca pela chave natural; excludeID > 0 ignora o próprio registro.
	GetBySKU(sku string, excludeID int64) (*entity.Product, error)
	List(search string) ([]*entity.Product, error)
	Update(p *entity.Product) error
	Delete(id int64) (bool, error)
}
