package repository

import (
	"time"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
)

// ExpenseRepository define o porto de persistência de despesas.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	GetByID(id int64) (*entity.Expense, error)
	// List ordena por vencimento ascendente (diferente dos demais cadastros).
	List(search string) ([]*entity.Expense, error)
	// ListByDueDateRange devolve despesas com vencimento em [from, to),
	// ordenadas por vencimento (relatório mensal).
	ListByDueDateRange(from, to time.Time) ([]*entity.Expense, error)
	Update(e *entity.Expense) error
	Delete(id int64) (bool, error)
}
