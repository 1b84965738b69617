package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/expense"
	"github.com/seu-usuario/gestor-api/internal/domain/repository"
	"github.com/seu-usuario/gestor-api/internal/domain/schema"
)

// ExpenseReportGenerator gera o relatório mensal de despesas em PDF.
type ExpenseReportGenerator interface {
	GenerateMonthlyReport(month time.Time, expenses []*entity.Expense) ([]byte, error)
}

// ExpenseUseCase orquestra o CRUD de despesas. Status é recomputado em toda
// criação e atualização, imediatamente antes de anexar a entrada de
// histórico; o valor persistido nunca é tratado como fonte de verdade.
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	seq      repository.SequenceRepository
	strategy expense.RoundingStrategy
	report   ExpenseReportGenerator
}

// NewExpenseUseCase constrói o caso de uso. report pode ser nil quando o
// relatório PDF não está habilitado.
func NewExpenseUseCase(
	repo repository.ExpenseRepository,
	seq repository.SequenceRepository,
	strategy expense.RoundingStrategy,
	report ExpenseReportGenerator,
) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, seq: seq, strategy: strategy, report: report}
}

// Create cria uma despesa: normaliza (gerando o cronograma de parcelas quando
// aplicável), valida, deriva o status e registra a entrada de criação no
// histórico.
func (uc *ExpenseUseCase) Create(in map[string]any) (*dto.ExpenseResponse, error) {
	e := schema.NormalizeExpense(in, uc.strategy)
	if res := schema.ValidateExpense(e); !res.Valid {
		return nil, &domain.ValidationError{Errors: res.Errors}
	}

	now := time.Now()
	status := expense.ComputeStatus(e, now)
	e.Status = status
	e.History = []entity.HistoryEntry{expense.HistoryOnCreate(now, status)}

	id, err := uc.seq.Next(schema.Expense.Collection)
	if err != nil {
		return nil, err
	}
	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// GetByID busca uma despesa; ErrNotFound se não existir.
func (uc *ExpenseUseCase) GetByID(id int64) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(e), nil
}

// List lista despesas por vencimento ascendente, com busca opcional.
func (uc *ExpenseUseCase) List(search string) ([]*dto.ExpenseResponse, error) {
	list, err := uc.repo.List(strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Update atualiza uma despesa pelo mesmo pipeline do create e anexa ao
// histórico existente exatamente uma entrada com a transição de status
// (do persistido para o recém-computado). O histórico nunca é truncado nem
// reordenado.
func (uc *ExpenseUseCase) Update(id int64, in map[string]any) (*dto.ExpenseResponse, error) {
	atual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}

	e := schema.NormalizeExpense(in, uc.strategy)
	if res := schema.ValidateExpense(e); !res.Valid {
		return nil, &domain.ValidationError{Errors: res.Errors}
	}

	now := time.Now()
	newStatus := expense.ComputeStatus(e, now)
	e.Status = newStatus

	history := make([]entity.HistoryEntry, len(atual.History), len(atual.History)+1)
	copy(history, atual.History)
	e.History = append(history, expense.HistoryOnUpdate(now, atual.Status, newStatus))

	e.ID = id
	e.CreatedAt = atual.CreatedAt
	e.UpdatedAt = now

	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Delete remove uma despesa; ErrNotFound se nada foi removido.
func (uc *ExpenseUseCase) Delete(id int64) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// MonthlyReport gera o PDF das despesas com vencimento no mês informado
// (formato MM/YYYY).
func (uc *ExpenseUseCase) MonthlyReport(month string) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("relatório PDF não habilitado")
	}
	from, err := time.ParseInLocation("01/2006", strings.TrimSpace(month), time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to := from.AddDate(0, 1, 0)

	expenses, err := uc.repo.ListByDueDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateMonthlyReport(from, expenses)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	installments := e.InstallmentsData
	if installments == nil {
		installments = []entity.Installment{}
	}
	history := e.History
	if history == nil {
		history = []entity.HistoryEntry{}
	}
	return &dto.ExpenseResponse{
		ID:               e.ID,
		Date:             e.Date,
		DueDate:          e.DueDate,
		PaymentDate:      e.PaymentDate,
		Description:      e.Description,
		Category:         e.Category,
		Type:             e.Type,
		PaymentMethod:    e.PaymentMethod,
		Value:            e.Value,
		Installments:     e.Installments,
		InstallmentsData: installments,
		Status:           e.Status,
		History:          history,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
