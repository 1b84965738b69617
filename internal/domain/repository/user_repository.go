package repository

import "github.com/seu-usuario/gestor-api/internal/domain/entity"

// UserRepository define o porto de persistência de usuários do painel.
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
}
