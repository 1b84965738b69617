package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa um cliente do cadastro.
// ID é o inteiro sequencial por coleção, atribuído uma única vez na criação.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CPF       string
	Zipcode   string
	Address   string
	Birthdate *time.Time
	Gender    string
	Orders    []Order
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Order é um snapshot imutável de pedido anexado ao cliente.
// A lista Orders é append-only: só cresce via operação dedicada de anexar,
// nunca é reescrita por um update genérico.
type Order struct {
	OrderID string           `json:"orderId"`
	Date    time.Time        `json:"date"`
	Items   []map[string]any `json:"items"`
	Total   decimal.Decimal  `json:"total"`
	Status  string           `json:"status"`
	Channel string           `json:"channel"`
}
