package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/repository"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, cnpj, name, trade_name, state_registration, phone, state, created_at, updated_at`

// SupplierRepo implementação de SupplierRepository.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository constrói o adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste um novo fornecedor.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CNPJ, s.Name, s.TradeName, s.StateRegistration,
		s.Phone, s.State, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID busca um fornecedor por ID; (nil, nil) quando não existe.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return scanOneSupplier(r.q.QueryRow(context.Background(), query, id), "get supplier")
}

// GetByCNPJ busca pela chave natural; excludeID > 0 ignora o próprio registro.
func (r *SupplierRepo) GetByCNPJ(cnpj string, excludeID int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE cnpj = $1 AND id <> $2`
	return scanOneSupplier(r.q.QueryRow(context.Background(), query, cnpj, excludeID), "get supplier by cnpj")
}

// List lista fornecedores, mais recentes primeiro, com busca opcional.
func (r *SupplierRepo) List(search string) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	var args []any
	if search != "" {
		query += ` WHERE ` + searchFilter(schema.Supplier.SearchFields)
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update atualiza um fornecedor.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET cnpj = $2, name = $3, trade_name = $4, state_registration = $5,
		    phone = $6, state = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CNPJ, s.Name, s.TradeName, s.StateRegistration,
		s.Phone, s.State, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete remove um fornecedor por ID; devolve false quando nada foi removido.
func (r *SupplierRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete supplier: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanOneSupplier(row pgx.Row, op string) (*entity.Supplier, error) {
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.CNPJ, &s.Name, &s.TradeName, &s.StateRegistration,
		&s.Phone, &s.State, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
