package repository

import "github.com/seu-usuario/gestor-api/internal/domain/entity"

// SupplierRepository define o porto de persistência de fornecedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	// GetByCNPJ busca pela chave natural; excludeID > 0 ignora o próprio registro.
	GetByCNPJ(cnpj string, excludeID int64) (*entity.Supplier, error)
	List(search string) ([]*entity.Supplier, error)
	Update(s *entity.Supplier) error
	Delete(id int64) (bool, error)
}
