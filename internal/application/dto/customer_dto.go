package dto

import (
	"time"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
)

// CustomerResponse documento de cliente exposto pela API.
type CustomerResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	CPF       string         `json:"cpf"`
	Zipcode   string         `json:"zipcode"`
	Address   string         `json:"address"`
	Birthdate *time.Time     `json:"birthdate"`
	Gender    string         `json:"gender"`
	Orders    []entity.Order `json:"orders"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
