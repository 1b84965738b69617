package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse documento de produto exposto pela API.
type ProductResponse struct {
	ID        int64           `json:"id"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SalePrice decimal.Decimal `json:"salePrice"`
	ImageURL  string          `json:"imageUrl"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
