package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/domain/repository"
	"github.com/seu-usuario/gestor-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação do painel: login por
// username/password com hash bcrypt.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, gera o JWT e retorna token + usuário.
// Credenciais ausentes → ErrInvalidInput; usuário inexistente ou senha
// incorreta → ErrUnauthorized (mesma resposta, para não vazar qual dos dois).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.FullName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		Message: "Login realizado com sucesso!",
		User: dto.UserResponse{
			ID:       user.ID,
			Name:     user.FullName,
			Username: user.Username,
		},
		Token: token,
	}, nil
}
