package entity

import "time"

// Supplier representa um fornecedor.
type Supplier struct {
	ID                int64
	CNPJ              string
	Name              string // razão social
	TradeName         string // nome fantasia
	StateRegistration string // inscrição estadual
	Phone             string
	State             string // UF
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
