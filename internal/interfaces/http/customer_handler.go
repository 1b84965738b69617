package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/application/usecase"
)

const customerNotFound = "Cliente não encontrado."

// CustomerHandler atende as requisições HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, customerNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Cliente cadastrado com sucesso!", customer))
}

// List GET /api/customers?search=s
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err, customerNotFound)
	}
	return c.JSON(dto.OKList(len(list), list))
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	customer, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err, customerNotFound)
	}
	return c.JSON(dto.OK(customer))
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	customer, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err, customerNotFound)
	}
	return c.JSON(dto.OKMessage("Cliente atualizado com sucesso!", customer))
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err, customerNotFound)
	}
	return c.JSON(dto.Response{Success: true, Message: "Cliente removido com sucesso!"})
}

// AppendOrder POST /api/customers/:id/orders
func (h *CustomerHandler) AppendOrder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	customer, err := h.uc.AppendOrder(id, in)
	if err != nil {
		return respondError(c, err, customerNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Pedido registrado com sucesso!", customer))
}

// ListOrders GET /api/customers/:id/orders
func (h *CustomerHandler) ListOrders(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	orders, err := h.uc.ListOrders(id)
	if err != nil {
		return respondError(c, err, customerNotFound)
	}
	return c.JSON(dto.OKList(len(orders), orders))
}
