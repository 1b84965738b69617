package expense_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/expense"
)

// ──────────────────────────────────────────────────────────────────────────────
// BuildInstallments: cronograma mensal de parcelas
// ──────────────────────────────────────────────────────────────────────────────

func dia(d, m, ano int) time.Time {
	return time.Date(ano, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func TestBuildInstallments_CronogramaMensal(t *testing.T) {
	total := decimal.NewFromInt(300)
	parcelas := expense.BuildInstallments(total, 3, dia(15, 1, 2026), expense.LastInstallmentAbsorbs)

	require.Len(t, parcelas, 3)
	for i, p := range parcelas {
		assert.Equal(t, i+1, p.Number, "numeração começa em 1 e é sequencial")
		assert.Equal(t, expense.StatusPending, p.Status, "toda parcela nasce pendente")
		assert.Nil(t, p.PaymentDate, "parcela nasce sem data de pagamento")
	}
	assert.Equal(t, dia(15, 1, 2026), parcelas[0].DueDate)
	assert.Equal(t, dia(15, 2, 2026), parcelas[1].DueDate)
	assert.Equal(t, dia(15, 3, 2026), parcelas[2].DueDate)
}

// TestBuildInstallments_EstouroDeMes documenta a aritmética do AddDate:
// 31/01 + 1 mês normaliza para o início de março (não existe 31/02).
func TestBuildInstallments_EstouroDeMes(t *testing.T) {
	parcelas := expense.BuildInstallments(decimal.NewFromInt(200), 2, dia(31, 1, 2026), expense.LastInstallmentAbsorbs)

	require.Len(t, parcelas, 2)
	assert.Equal(t, dia(31, 1, 2026), parcelas[0].DueDate)
	assert.Equal(t, dia(3, 3, 2026), parcelas[1].DueDate, "31/01 + 1 mês normaliza para 03/03 em ano não bissexto")
}

func TestBuildInstallments_UltimaAbsorveArredondamento(t *testing.T) {
	// 100 / 3 = 33.33...; a última parcela absorve o resto.
	parcelas := expense.BuildInstallments(decimal.NewFromInt(100), 3, dia(1, 6, 2026), expense.LastInstallmentAbsorbs)

	require.Len(t, parcelas, 3)
	assert.True(t, parcelas[0].Value.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, parcelas[1].Value.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, parcelas[2].Value.Equal(decimal.RequireFromString("33.34")))

	soma := decimal.Zero
	for _, p := range parcelas {
		soma = soma.Add(p.Value)
	}
	assert.True(t, soma.Equal(decimal.NewFromInt(100)), "a soma das parcelas é exatamente o total")
}

func TestBuildInstallments_ArredondamentoLegado(t *testing.T) {
	// Estratégia legada: toda parcela vale round(total/n, 2) e a soma pode
	// divergir do total em centavos.
	parcelas := expense.BuildInstallments(decimal.NewFromInt(100), 3, dia(1, 6, 2026), expense.RoundEachInstallment)

	require.Len(t, parcelas, 3)
	for _, p := range parcelas {
		assert.True(t, p.Value.Equal(decimal.RequireFromString("33.33")))
	}
}

func TestBuildInstallments_QuantidadeInvalida(t *testing.T) {
	assert.Nil(t, expense.BuildInstallments(decimal.NewFromInt(100), 0, dia(1, 6, 2026), expense.LastInstallmentAbsorbs))
	assert.Nil(t, expense.BuildInstallments(decimal.NewFromInt(100), -2, dia(1, 6, 2026), expense.LastInstallmentAbsorbs))
}

func TestParseRoundingStrategy(t *testing.T) {
	assert.Equal(t, expense.RoundEachInstallment, expense.ParseRoundingStrategy("each"))
	assert.Equal(t, expense.LastInstallmentAbsorbs, expense.ParseRoundingStrategy("last-absorbs"))
	assert.Equal(t, expense.LastInstallmentAbsorbs, expense.ParseRoundingStrategy(""), "desconhecido cai no padrão")
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStatus: derivação pura do status agregado
// ──────────────────────────────────────────────────────────────────────────────

var agora = dia(15, 8, 2026)

func TestComputeStatus_PagamentoUnico(t *testing.T) {
	vencFuturo := dia(20, 8, 2026)
	vencPassado := dia(10, 8, 2026)
	pgto := dia(12, 8, 2026)

	casos := []struct {
		nome     string
		e        *entity.Expense
		esperado string
	}{
		{"pago quando tem data de pagamento", &entity.Expense{Type: expense.TypeSingle, PaymentDate: &pgto, DueDate: &vencPassado}, expense.StatusPaid},
		{"pendente quando vencimento no futuro", &entity.Expense{Type: expense.TypeSingle, DueDate: &vencFuturo}, expense.StatusPending},
		{"não pago quando vencido", &entity.Expense{Type: expense.TypeSingle, DueDate: &vencPassado}, expense.StatusUnpaid},
		{"não pago quando sem vencimento", &entity.Expense{Type: expense.TypeSingle}, expense.StatusUnpaid},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.esperado, expense.ComputeStatus(c.e, agora))
		})
	}
}

func parcela(due time.Time, paga bool) entity.Installment {
	p := entity.Installment{DueDate: due, Status: expense.StatusPending, Value: decimal.NewFromInt(10)}
	if paga {
		pg := due
		p.PaymentDate = &pg
		p.Status = expense.StatusPaid
	}
	return p
}

func TestComputeStatus_ParcelaMensal(t *testing.T) {
	futuro1 := dia(20, 8, 2026)
	futuro2 := dia(20, 9, 2026)
	passado := dia(10, 8, 2026)

	t.Run("todas pagas", func(t *testing.T) {
		e := &entity.Expense{Type: expense.TypeMonthly, InstallmentsData: []entity.Installment{
			parcela(passado, true), parcela(futuro1, true),
		}}
		assert.Equal(t, expense.StatusPaid, expense.ComputeStatus(e, agora))
	})

	t.Run("vencida domina mesmo com outras pagas", func(t *testing.T) {
		e := &entity.Expense{Type: expense.TypeMonthly, InstallmentsData: []entity.Installment{
			parcela(passado, false), parcela(futuro1, true),
		}}
		assert.Equal(t, expense.StatusUnpaid, expense.ComputeStatus(e, agora))
	})

	t.Run("em andamento quando há pagas e nenhuma vencida", func(t *testing.T) {
		e := &entity.Expense{Type: expense.TypeMonthly, InstallmentsData: []entity.Installment{
			parcela(futuro1, true), parcela(futuro2, false), parcela(dia(20, 10, 2026), false),
		}}
		assert.Equal(t, "Em andamento (1/3)", expense.ComputeStatus(e, agora))
	})

	t.Run("pendente quando nenhuma paga nem vencida", func(t *testing.T) {
		e := &entity.Expense{Type: expense.TypeMonthly, InstallmentsData: []entity.Installment{
			parcela(futuro1, false), parcela(futuro2, false),
		}}
		assert.Equal(t, "Pendente (2 parcelas)", expense.ComputeStatus(e, agora))
	})

	t.Run("pendente quando sem parcelas", func(t *testing.T) {
		e := &entity.Expense{Type: expense.TypeMonthly}
		assert.Equal(t, expense.StatusPending, expense.ComputeStatus(e, agora))
	})
}

// TestComputeStatus_Determinista: mesma entrada, mesmo instante, mesmo status.
// O status persistido nunca entra no cálculo.
func TestComputeStatus_Determinista(t *testing.T) {
	venc := dia(20, 8, 2026)
	e := &entity.Expense{Type: expense.TypeMonthly, Status: "qualquer coisa persistida", InstallmentsData: []entity.Installment{
		parcela(venc, false),
	}}
	s1 := expense.ComputeStatus(e, agora)
	s2 := expense.ComputeStatus(e, agora)
	assert.Equal(t, s1, s2)
	assert.Equal(t, "Pendente (1 parcelas)", s1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Histórico
// ──────────────────────────────────────────────────────────────────────────────

func TestHistoryOnCreate(t *testing.T) {
	h := expense.HistoryOnCreate(agora, expense.StatusPending)
	assert.Equal(t, expense.ActionCreated, h.Action)
	assert.Equal(t, expense.StatusPending, h.Status)
	assert.Equal(t, agora, h.Date)
	assert.Empty(t, h.FromStatus)
	assert.Empty(t, h.ToStatus)
}

func TestHistoryOnUpdate_RegistraTransicao(t *testing.T) {
	h := expense.HistoryOnUpdate(agora, expense.StatusPending, expense.StatusPaid)
	assert.Equal(t, expense.ActionUpdated, h.Action)
	assert.Equal(t, expense.StatusPending, h.FromStatus)
	assert.Equal(t, expense.StatusPaid, h.ToStatus)
}
