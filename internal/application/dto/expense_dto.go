package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
)

// ExpenseResponse documento de despesa exposto pela API.
type ExpenseResponse struct {
	ID               int64                 `json:"id"`
	Date             *time.Time            `json:"date"`
	DueDate          *time.Time            `json:"dueDate"`
	PaymentDate      *time.Time            `json:"paymentDate"`
	Description      string                `json:"description"`
	Category         string                `json:"category"`
	Type             string                `json:"type"`
	PaymentMethod    string                `json:"paymentMethod"`
	Value            decimal.Decimal       `json:"value"`
	Installments     int                   `json:"installments"`
	InstallmentsData []entity.Installment  `json:"installmentsData"`
	Status           string                `json:"status"`
	History          []entity.HistoryEntry `json:"history"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}
