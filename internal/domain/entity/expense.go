package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa uma despesa. Status é derivado: sempre recomputado a
// partir de Type, DueDate, PaymentDate e InstallmentsData no momento da
// escrita; o valor persistido existe só para exibição e busca.
type Expense struct {
	ID            int64
	Date          *time.Time // data de pagamento informada no cadastro
	DueDate       *time.Time
	PaymentDate   *time.Time // data de efetivação do pagamento
	Description   string
	Category      string
	Type          string
	PaymentMethod string
	Value         decimal.Decimal
	Installments  int
	// InstallmentsData é gerado na criação quando Type é parcela mensal;
	// tamanho = Installments.
	InstallmentsData []Installment
	Status           string
	// History é append-only: criação e cada atualização anexam exatamente
	// uma entrada; nada é removido ou reordenado.
	History   []HistoryEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Installment é uma parcela do cronograma mensal de uma despesa.
type Installment struct {
	Number      int             `json:"number"`
	DueDate     time.Time       `json:"dueDate"`
	PaymentDate *time.Time      `json:"paymentDate"`
	Status      string          `json:"status"`
	Value       decimal.Decimal `json:"value"`
}

// HistoryEntry é uma entrada do histórico de auditoria da despesa.
type HistoryEntry struct {
	Date       time.Time `json:"date"`
	Action     string    `json:"action"`
	Status     string    `json:"status,omitempty"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus,omitempty"`
}
