package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/repository"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

// ProductUseCase orquestra o CRUD de produtos; a chave natural é o SKU.
type ProductUseCase struct {
	repo repository.ProductRepository
	seq  repository.SequenceRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, seq repository.SequenceRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, seq: seq}
}

func skuConflict() error {
	return &domain.ConflictError{Field: "sku", Message: "Já existe um produto cadastrado com esse SKU."}
}

// Create cria um produto a partir do corpo bruto da requisição.
func (uc *ProductUseCase) Create(in map[string]any) (*dto.ProductResponse, error) {
	product := schema.NormalizeProduct(in)
	if res := schema.ValidateProduct(product); !res.Valid {
		return nil, &domain.ValidationError{Errors: res.Errors}
	}

	exists, err := uc.repo.GetBySKU(product.SKU, 0)
	if err != nil {
		return nil, err
	}
	if exists != nil {
		return nil, skuConflict()
	}

	id, err := uc.seq.Next(schema.Product.Collection)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := uc.repo.Create(product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, skuConflict()
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID busca um produto; ErrNotFound se não existir.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista produtos, mais recentes primeiro, com busca opcional.
func (uc *ProductUseCase) List(search string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update atualiza um produto; a checagem de SKU exclui o próprio ID.
func (uc *ProductUseCase) Update(id int64, in map[string]any) (*dto.ProductResponse, error) {
	atual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}

	product := schema.NormalizeProduct(in)
	if res := schema.ValidateProduct(product); !res.Valid {
		return nil, &domain.ValidationError{Errors: res.Errors}
	}

	exists, err := uc.repo.GetBySKU(product.SKU, id)
	if err != nil {
		return nil, err
	}
	if exists != nil {
		return nil, skuConflict()
	}

	product.ID = id
	product.CreatedAt = atual.CreatedAt
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, skuConflict()
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete remove um produto; ErrNotFound se nada foi removido.
func (uc *ProductUseCase) Delete(id int64) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Category:  p.Category,
		Name:      p.Name,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		ImageURL:  p.ImageURL,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
