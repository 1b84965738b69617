package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo.
type Product struct {
	ID        int64
	SKU       string // sempre persistido em maiúsculas
	Category  string
	Name      string
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	ImageURL  string
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
