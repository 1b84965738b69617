package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/application/usecase"
	"github.com/seu-usuario/gestor-api/internal/domain"
)

// parseID lê o parâmetro :id da rota como inteiro sequencial.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// invalidID resposta padrão para :id não numérico.
func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido."))
}

// invalidBody resposta padrão para corpo que não é JSON.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Corpo da requisição inválido."))
}

// respondError traduz a taxonomia de erros do domínio em HTTP:
// validação e conflito → 400 (corrigível pelo cliente), não encontrado → 404
// com a mensagem da entidade, rate limit do upstream → 429, resto → 500.
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false,
			Message: "Dados inválidos.",
			Errors:  verr.Errors,
		})
	}

	var cerr *domain.ConflictError
	if errors.As(err, &cerr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false,
			Message: cerr.Message,
			Field:   cerr.Field,
		})
	}

	var lerr *usecase.LookupFailedError
	if errors.As(err, &lerr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(lerr.Message))
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(notFoundMsg))
	case errors.Is(err, domain.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.Fail("Muitas consultas. Aguarde alguns instantes e tente novamente."))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Dados inválidos."))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Usuário ou senha inválidos."))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Erro interno do servidor."))
	}
}
