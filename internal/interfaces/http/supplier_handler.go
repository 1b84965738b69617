package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/application/usecase"
)

const supplierNotFound = "Fornecedor não encontrado."

// SupplierHandler atende as requisições HTTP de fornecedores (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler constrói o handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	supplier, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, supplierNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Fornecedor cadastrado com sucesso!", supplier))
}

// List GET /api/suppliers?search=s
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err, supplierNotFound)
	}
	return c.JSON(dto.OKList(len(list), list))
}

// GetByID GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	supplier, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err, supplierNotFound)
	}
	return c.JSON(dto.OK(supplier))
}

// Update PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	supplier, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err, supplierNotFound)
	}
	return c.JSON(dto.OKMessage("Fornecedor atualizado com sucesso!", supplier))
}

// Delete DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err, supplierNotFound)
	}
	return c.JSON(dto.Response{Success: true, Message: "Fornecedor removido com sucesso!"})
}

// LookupCNPJ GET /api/suppliers/cnpj/:cnpj
// Consulta o cadastro nacional para pré-preencher o formulário de fornecedor.
// Rate limit do upstream responde 429, distinto das demais falhas.
func (h *SupplierHandler) LookupCNPJ(c *fiber.Ctx) error {
	result, err := h.uc.LookupCNPJ(c.UserContext(), c.Params("cnpj"))
	if err != nil {
		return respondError(c, err, supplierNotFound)
	}
	return c.JSON(dto.OK(result))
}
