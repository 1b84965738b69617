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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, category, name, cost_price, sale_price, image_url, stock, created_at, updated_at`

// ProductRepo implementação de ProductRepository. Preços são NUMERIC e
// trafegam como shopspring/decimal via codec do pool.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Category, p.Name, p.CostPrice, p.SalePrice,
		p.ImageURL, p.Stock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID busca um produto por ID; (nil, nil) quando não existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanOneProduct(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU busca pela chave natural; excludeID > 0 ignora o próprio registro.
func (r *ProductRepo) GetBySKU(sku string, excludeID int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 AND id <> $2`
	return scanOneProduct(r.q.QueryRow(context.Background(), query, sku, excludeID), "get product by sku")
}

// List lista produtos, mais recentes primeiro, com busca opcional.
func (r *ProductRepo) List(search string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	if search != "" {
		query += ` WHERE ` + searchFilter(schema.Product.SearchFields)
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update atualiza um produto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, category = $3, name = $4, cost_price = $5,
		    sale_price = $6, image_url = $7, stock = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Category, p.Name, p.CostPrice, p.SalePrice,
		p.ImageURL, p.Stock, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete remove um produto por ID; devolve false quando nada foi removido.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanOneProduct(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Category, &p.Name, &p.CostPrice, &p.SalePrice,
		&p.ImageURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
