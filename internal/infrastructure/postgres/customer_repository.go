package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/repository"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, phone, cpf, zipcode, address, birthdate, gender, orders, created_at, updated_at`

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
// Orders é persistido como JSONB.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um novo cliente.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.CPF, c.Zipcode, c.Address,
		c.Birthdate, c.Gender, c.Orders, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID busca um cliente por ID; (nil, nil) quando não existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get customer")
}

// GetByPhone busca pela chave natural; excludeID > 0 ignora o próprio registro.
func (r *CustomerRepo) GetByPhone(phone string, excludeID int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone = $1 AND id <> $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, phone, excludeID), "get customer by phone")
}

// List lista clientes, mais recentes primeiro. search != "" aplica o filtro
// de substring dos campos de busca do schema.
func (r *CustomerRepo) List(search string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	var args []any
	if search != "" {
		query += ` WHERE ` + searchFilter(schema.Customer.SearchFields)
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update atualiza um cliente. Orders não é tocado aqui: pedidos só mudam via
// AppendOrder.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, cpf = $5, zipcode = $6,
		    address = $7, birthdate = $8, gender = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.CPF, c.Zipcode, c.Address,
		c.Birthdate, c.Gender, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete remove um cliente por ID; devolve false quando nada foi removido.
func (r *CustomerRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AppendOrder anexa o pedido à sequência em uma única escrita atômica
// (concatenação JSONB) e atualiza updatedAt. (nil, nil) se o cliente não existe.
func (r *CustomerRepo) AppendOrder(id int64, order entity.Order, updatedAt time.Time) (*entity.Customer, error) {
	query := `
		UPDATE customers
		SET orders = COALESCE(orders, '[]'::jsonb) || $2::jsonb, updated_at = $3
		WHERE id = $1
		RETURNING ` + customerColumns
	return r.scanOne(
		r.q.QueryRow(context.Background(), query, id, []entity.Order{order}, updatedAt),
		"append order",
	)
}

func (r *CustomerRepo) scanOne(row pgx.Row, op string) (*entity.Customer, error) {
	c, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (r *CustomerRepo) scan(rows pgx.Rows) (*entity.Customer, error) {
	return r.scanRow(rows)
}

func (r *CustomerRepo) scanRow(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.CPF, &c.Zipcode, &c.Address,
		&c.Birthdate, &c.Gender, &c.Orders, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
