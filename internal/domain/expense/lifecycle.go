// Package expense implementa o ciclo de vida de despesas: geração do
// cronograma de parcelas e derivação do status agregado a partir do
// histórico de pagamentos.
package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
)

// Tipos de despesa (valores fechados do schema).
const (
	TypeMonthly = "Parcela mensal"
	TypeSingle  = "Pag. único"
)

// Status agregados e de parcela.
const (
	StatusPaid    = "Pago"
	StatusPending = "Pendente"
	StatusUnpaid  = "Não pago"
)

// Ações registradas no histórico.
const (
	ActionCreated = "Despesa criada"
	ActionUpdated = "Despesa atualizada"
)

// RoundingStrategy define como o valor total é distribuído entre as parcelas.
type RoundingStrategy int

const (
	// LastInstallmentAbsorbs arredonda a quota de cada parcela para 2 casas
	// e atribui à última o total menos as anteriores, de modo que a soma das
	// parcelas é sempre exatamente o valor total.
	LastInstallmentAbsorbs RoundingStrategy = iota
	// RoundEachInstallment reproduz o comportamento legado: toda parcela vale
	// round(total/n, 2) e a soma pode divergir do total em até n-1 centavos.
	RoundEachInstallment
)

// ParseRoundingStrategy converte o valor de configuração ("last-absorbs" ou
// "each") na estratégia correspondente. Valores desconhecidos caem no padrão.
func ParseRoundingStrategy(s string) RoundingStrategy {
	if s == "each" {
		return RoundEachInstallment
	}
	return LastInstallmentAbsorbs
}

// BuildInstallments gera o cronograma de parcelas 1..n a partir da data de
// vencimento base. O vencimento da parcela i é a base mais i-1 meses via
// time.AddDate, que normaliza estouro de mês (31/01 + 1 mês cai no início de
// março); essa é a aritmética nativa da biblioteca de datas e fica como está.
// Toda parcela nasce pendente e sem data de pagamento.
// Devolve nil quando n <= 0.
func BuildInstallments(total decimal.Decimal, n int, due time.Time, strategy RoundingStrategy) []entity.Installment {
	if n <= 0 {
		return nil
	}

	quota := total.DivRound(decimal.NewFromInt(int64(n)), 2)

	out := make([]entity.Installment, 0, n)
	for i := 0; i < n; i++ {
		value := quota
		if strategy == LastInstallmentAbsorbs && i == n-1 {
			value = total.Sub(quota.Mul(decimal.NewFromInt(int64(n - 1))))
		}
		out = append(out, entity.Installment{
			Number:      i + 1,
			DueDate:     due.AddDate(0, i, 0),
			PaymentDate: nil,
			Status:      StatusPending,
			Value:       value,
		})
	}
	return out
}

// ComputeStatus deriva o status agregado da despesa no instante now.
// É uma função pura dos campos atuais: o status persistido nunca entra no
// cálculo. Deve ser chamada em toda criação e atualização, imediatamente
// antes de anexar a entrada de histórico.
func ComputeStatus(e *entity.Expense, now time.Time) string {
	if e.Type == TypeSingle {
		if e.PaymentDate != nil {
			return StatusPaid
		}
		if e.DueDate == nil {
			return StatusUnpaid
		}
		if e.DueDate.Before(now) {
			return StatusUnpaid
		}
		return StatusPending
	}

	parcelas := e.InstallmentsData
	if len(parcelas) == 0 {
		return StatusPending
	}

	total := len(parcelas)
	var pagas, atrasadas int
	for _, p := range parcelas {
		switch {
		case p.PaymentDate != nil:
			pagas++
		case p.DueDate.Before(now):
			atrasadas++
		}
	}

	switch {
	case pagas == total:
		return StatusPaid
	case atrasadas > 0:
		// Parcela vencida domina o status mesmo com outras pagas.
		return StatusUnpaid
	case pagas > 0:
		return fmt.Sprintf("Em andamento (%d/%d)", pagas, total)
	default:
		return fmt.Sprintf("Pendente (%d parcelas)", total)
	}
}

// HistoryOnCreate devolve a entrada única de histórico da criação.
func HistoryOnCreate(now time.Time, status string) entity.HistoryEntry {
	return entity.HistoryEntry{
		Date:   now,
		Action: ActionCreated,
		Status: status,
	}
}

// HistoryOnUpdate devolve a entrada única de histórico de uma atualização,
// registrando a transição do status persistido para o recém-computado.
func HistoryOnUpdate(now time.Time, fromStatus, toStatus string) entity.HistoryEntry {
	return entity.HistoryEntry{
		Date:       now,
		Action:     ActionUpdated,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
	}
}
