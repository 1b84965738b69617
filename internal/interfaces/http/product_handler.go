package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/application/usecase"
)

const productNotFound = "Produto não encontrado."

// ProductHandler atende as requisições HTTP de produtos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Produto cadastrado com sucesso!", product))
}

// List GET /api/products?search=s
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.JSON(dto.OKList(len(list), list))
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	product, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.JSON(dto.OK(product))
}

// Update PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	product, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.JSON(dto.OKMessage("Produto atualizado com sucesso!", product))
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.JSON(dto.Response{Success: true, Message: "Produto removido com sucesso!"})
}
