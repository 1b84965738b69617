package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-api/internal/application/auth"
	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/domain"
)

// AuthHandler atende login e validação de sessão do painel.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Usuário e senha são obrigatórios."))
		}
		return respondError(c, err, "Usuário não encontrado.")
	}
	return c.JSON(out)
}

// ValidateSession GET /api/validate-session
// Roda atrás do middleware de auth: se chegou aqui, o token é válido.
func (h *AuthHandler) ValidateSession(c *fiber.Ctx) error {
	return c.JSON(dto.OK(dto.UserResponse{
		ID:       GetUserID(c),
		Name:     GetName(c),
		Username: GetUsername(c),
	}))
}
