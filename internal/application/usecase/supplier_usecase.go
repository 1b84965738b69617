package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/repository"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
	"github.com/seu-usuario/gestor-api/pkg/br"
)

// RegistryGateway consulta os dados cadastrais de um CNPJ num serviço externo
// (ReceitaWS). Recebe o CNPJ já normalizado para 14 dígitos.
type RegistryGateway interface {
	Lookup(ctx context.Context, cnpj string) (*dto.RegistryLookupResponse, error)
}

// LookupFailedError falha de negócio devolvida pela consulta de CNPJ
// (CNPJ inexistente, baixado, inválido). Corrigível pelo usuário.
type LookupFailedError struct {
	Message string
}

func (e *LookupFailedError) Error() string {
	return e.Message
}

// SupplierUseCase orquestra o CRUD de fornecedores; a chave natural é o CNPJ.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	seq      repository.SequenceRepository
	registry RegistryGateway
}

// NewSupplierUseCase constrói o caso de uso. registry pode ser nil quando a
// consulta de CNPJ não está habilitada.
func NewSupplierUseCase(repo repository.SupplierRepository, seq repository.SequenceRepository, registry RegistryGateway) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, seq: seq, registry: registry}
}

func cnpjConflict() error {
	return &domain.ConflictError{Field: "cnpj", Message: "Já existe um fornecedor cadastrado com esse CNPJ."}
}

// Create cria um fornecedor a partir do corpo bruto da requisição.
func (uc *SupplierUseCase) Create(in map[string]any) (*dto.SupplierResponse, error) {
	supplier := schema.NormalizeSupplier(in)
	if res := schema.ValidateSupplier(supplier); !res.Valid {
		return nil, &domain.ValidationError{Errors: res.Errors}
	}

	exists, err := uc.repo.GetByCNPJ(supplier.CNPJ, 0)
	if err != nil {
		return nil, err
	}
	if exists != nil {
		return nil, cnpjConflict()
	}

	id, err := uc.seq.Next(schema.Supplier.Collection)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	supplier.ID = id
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if err := uc.repo.Create(supplier); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, cnpjConflict()
		}
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID busca um fornecedor; ErrNotFound se não existir.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista fornecedores, mais recentes primeiro, com busca opcional.
func (uc *SupplierUseCase) List(search string) ([]*dto.SupplierResponse, error) {
	list, err := uc.repo.List(strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update atualiza um fornecedor; a checagem de CNPJ exclui o próprio ID.
func (uc *SupplierUseCase) Update(id int64, in map[string]any) (*dto.SupplierResponse, error) {
	atual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}

	supplier := schema.NormalizeSupplier(in)
	if res := schema.ValidateSupplier(supplier); !res.Valid {
		return nil, &domain.ValidationError{Errors: res.Errors}
	}

	exists, err := uc.repo.GetByCNPJ(supplier.CNPJ, id)
	if err != nil {
		return nil, err
	}
	if exists != nil {
		return nil, cnpjConflict()
	}

	supplier.ID = id
	supplier.CreatedAt = atual.CreatedAt
	supplier.UpdatedAt = time.Now()

	if err := uc.repo.Update(supplier); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, cnpjConflict()
		}
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete remove um fornecedor; ErrNotFound se nada foi removido.
func (uc *SupplierUseCase) Delete(id int64) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// LookupCNPJ consulta o cadastro nacional. Remove tudo que não for dígito,
// valida os dígitos verificadores e repassa ao gateway; rate limit do upstream
// sobe como ErrRateLimited, distinto das demais falhas.
func (uc *SupplierUseCase) LookupCNPJ(ctx context.Context, raw string) (*dto.RegistryLookupResponse, error) {
	if uc.registry == nil {
		return nil, errors.New("consulta de CNPJ não habilitada")
	}
	cnpj := br.NormalizeCNPJ(raw)
	if err := br.ValidateCNPJ(cnpj); err != nil {
		return nil, &LookupFailedError{Message: "CNPJ inválido."}
	}
	return uc.registry.Lookup(ctx, cnpj)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:                s.ID,
		CNPJ:              s.CNPJ,
		Name:              s.Name,
		TradeName:         s.TradeName,
		StateRegistration: s.StateRegistration,
		Phone:             s.Phone,
		State:             s.State,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
