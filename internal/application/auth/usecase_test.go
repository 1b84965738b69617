package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-usuario/gestor-api/internal/application/auth"
	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	pkgjwt "github.com/seu-usuario/gestor-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return u, nil
}

const testSecret = "test-secret-key-for-unit-tests"

func novoAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"admin": {
			ID:           "00000000-0000-0000-0000-000000000001",
			Username:     "admin",
			PasswordHash: string(hash),
			FullName:     "Administrador",
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "gestor-api-test",
	})
}

func TestLogin_Sucesso(t *testing.T) {
	uc := novoAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "senha-forte"})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "Login realizado com sucesso!", out.Message)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, "Administrador", out.User.Name)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "o token devolvido deve ser verificável")
	assert.Equal(t, out.User.ID, claims.UserID)
}

func TestLogin_CamposVazios(t *testing.T) {
	uc := novoAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Usuário inexistente e senha incorreta devolvem o mesmo erro, para a resposta
// não vazar qual dos dois falhou.
func TestLogin_CredenciaisInvalidas(t *testing.T) {
	uc := novoAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "naoexiste", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
