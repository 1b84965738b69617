package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/repository"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, date, due_date, payment_date, description, category, type,
	payment_method, value, installments, installments_data, status, history,
	created_at, updated_at`

// ExpenseRepo implementação de ExpenseRepository. Cronograma de parcelas e
// histórico são persistidos como JSONB; o valor como NUMERIC.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository constrói o adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste uma nova despesa.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Date, e.DueDate, e.PaymentDate, e.Description, e.Category, e.Type,
		e.PaymentMethod, e.Value, e.Installments, e.InstallmentsData, e.Status,
		e.History, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID busca uma despesa por ID; (nil, nil) quando não existe.
func (r *ExpenseRepo) GetByID(id int64) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	return scanOneExpense(r.q.QueryRow(context.Background(), query, id), "get expense")
}

// List lista despesas por vencimento ascendente, com busca opcional.
func (r *ExpenseRepo) List(search string) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	var args []any
	if search != "" {
		query += ` WHERE ` + searchFilter(schema.Expense.SearchFields)
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY due_date ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

// ListByDueDateRange devolve despesas com vencimento em [from, to),
// ordenadas por vencimento.
func (r *ExpenseRepo) ListByDueDateRange(from, to time.Time) ([]*entity.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE due_date >= $1 AND due_date < $2
		ORDER BY due_date ASC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses by due date: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

// Update substitui os campos da despesa (incluindo cronograma, status e
// histórico já montados pelo caso de uso).
func (r *ExpenseRepo) Update(e *entity.Expense) error {
	query := `
		UPDATE expenses
		SET date = $2, due_date = $3, payment_date = $4, description = $5,
		    category = $6, type = $7, payment_method = $8, value = $9,
		    installments = $10, installments_data = $11, status = $12,
		    history = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Date, e.DueDate, e.PaymentDate, e.Description, e.Category,
		e.Type, e.PaymentMethod, e.Value, e.Installments, e.InstallmentsData,
		e.Status, e.History, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete remove uma despesa por ID; devolve false quando nada foi removido.
func (r *ExpenseRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func collectExpenses(rows pgx.Rows) ([]*entity.Expense, error) {
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanOneExpense(row pgx.Row, op string) (*entity.Expense, error) {
	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(
		&e.ID, &e.Date, &e.DueDate, &e.PaymentDate, &e.Description, &e.Category,
		&e.Type, &e.PaymentMethod, &e.Value, &e.Installments, &e.InstallmentsData,
		&e.Status, &e.History, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
