package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/application/usecase"
)

const expenseNotFound = "Despesa não encontrada."

// ExpenseHandler atende as requisições HTTP de despesas (protegido).
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler constrói o handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	expense, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, expenseNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Despesa cadastrada com sucesso!", expense))
}

// List GET /api/expenses?search=s
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err, expenseNotFound)
	}
	return c.JSON(dto.OKList(len(list), list))
}

// GetByID GET /api/expenses/:id
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	expense, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err, expenseNotFound)
	}
	return c.JSON(dto.OK(expense))
}

// Update PUT /api/expenses/:id
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	expense, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err, expenseNotFound)
	}
	return c.JSON(dto.OKMessage("Despesa atualizada com sucesso!", expense))
}

// Delete DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err, expenseNotFound)
	}
	return c.JSON(dto.Response{Success: true, Message: "Despesa removida com sucesso!"})
}

// MonthlyReport GET /api/expenses/report?month=MM/YYYY
// Devolve o PDF com as despesas que vencem no mês informado.
func (h *ExpenseHandler) MonthlyReport(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Informe o mês no formato MM/YYYY."))
	}
	pdf, err := h.uc.MonthlyReport(month)
	if err != nil {
		return respondError(c, err, expenseNotFound)
	}
	filename := "relatorio-despesas-" + strings.ReplaceAll(month, "/", "-") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
