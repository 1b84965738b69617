package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/repository"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

// CustomerUseCase orquestra o CRUD de clientes: normalizar → validar →
// unicidade de telefone → alocar ID → persistir.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	seq  repository.SequenceRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, seq repository.SequenceRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, seq: seq}
}

// phoneConflict é o conflito devolvido quando o telefone (chave natural) já
// pertence a outro cliente. O índice único parcial no banco garante a
// unicidade sob concorrência; esta checagem produz a mensagem amigável.
func phoneConflict() error {
	return &domain.ConflictError{Field: "phone", Message: "Já existe um cliente cadastrado com esse telefone."}
}

// Create cria um cliente a partir do corpo bruto da requisição.
func (uc *CustomerUseCase) Create(in map[string]any) (*dto.CustomerResponse, error) {
	customer := schema.NormalizeCustomer(in)
	if res := schema.ValidateCustomer(customer); !res.Valid {
		return nil, &domain.ValidationError{Errors: res.Errors}
	}

	if customer.Phone != "" {
		exists, err := uc.repo.GetByPhone(customer.Phone, 0)
		if err != nil {
			return nil, err
		}
		if exists != nil {
			return nil, phoneConflict()
		}
	}

	id, err := uc.seq.Next(schema.Customer.Collection)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	customer.ID = id
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if err := uc.repo.Create(customer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Corrida perdida para um create concorrente: o índice único decide.
			return nil, phoneConflict()
		}
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID busca um cliente; ErrNotFound se não existir.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes, mais recentes primeiro, com busca opcional.
func (uc *CustomerUseCase) List(search string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update atualiza um cliente pelo mesmo pipeline do create; a checagem de
// unicidade exclui o próprio ID. Orders é append-only e nunca é reescrito
// por aqui: o valor persistido é preservado.
func (uc *CustomerUseCase) Update(id int64, in map[string]any) (*dto.CustomerResponse, error) {
	atual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}

	customer := schema.NormalizeCustomer(in)
	if res := schema.ValidateCustomer(customer); !res.Valid {
		return nil, &domain.ValidationError{Errors: res.Errors}
	}

	if customer.Phone != "" {
		exists, err := uc.repo.GetByPhone(customer.Phone, id)
		if err != nil {
			return nil, err
		}
		if exists != nil {
			return nil, phoneConflict()
		}
	}

	customer.ID = id
	customer.Orders = atual.Orders
	customer.CreatedAt = atual.CreatedAt
	customer.UpdatedAt = time.Now()

	if err := uc.repo.Update(customer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, phoneConflict()
		}
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete remove um cliente; ErrNotFound se nada foi removido.
func (uc *CustomerUseCase) Delete(id int64) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// AppendOrder anexa um pedido ao cliente (operação dedicada, escrita atômica
// no repositório). Pedido sem orderId recebe um UUID.
func (uc *CustomerUseCase) AppendOrder(id int64, in map[string]any) (*dto.CustomerResponse, error) {
	now := time.Now()
	order := schema.NormalizeOrder(in, now)
	if order.OrderID == "" {
		order.OrderID = uuid.New().String()
	}

	customer, err := uc.repo.AppendOrder(id, order, now)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// ListOrders devolve os pedidos do cliente.
func (uc *CustomerUseCase) ListOrders(id int64) ([]entity.Order, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.Orders == nil {
		return []entity.Order{}, nil
	}
	return customer.Orders, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	orders := c.Orders
	if orders == nil {
		orders = []entity.Order{}
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CPF:       c.CPF,
		Zipcode:   c.Zipcode,
		Address:   c.Address,
		Birthdate: c.Birthdate,
		Gender:    c.Gender,
		Orders:    orders,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
