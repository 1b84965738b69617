package repository

import (
	"time"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
)

// CustomerRepository define o porto de persistência de clientes.
// Métodos Get devolvem (nil, nil) quando o registro não existe.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	// GetByPhone busca pela chave natural; excludeID > 0 ignora o próprio
	// registro (checagem de unicidade em update).
	GetByPhone(phone string, excludeID int64) (*entity.Customer, error)
	// List devolve os clientes mais recentes primeiro; search != "" aplica
	// substring case-insensitive com OR sobre os campos de busca do schema.
	List(search string) ([]*entity.Customer, error)
	Update(c *entity.Customer) error
	// Delete devolve false quando nada foi removido.
	Delete(id int64) (bool, error)
	// AppendOrder anexa um pedido à sequência append-only em uma única
	// escrita atômica e atualiza updatedAt. Devolve (nil, nil) se o cliente
	// não existe.
	AppendOrder(id int64, order entity.Order, updatedAt time.Time) (*entity.Customer, error)
}
