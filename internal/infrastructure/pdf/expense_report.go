// Package pdf gera o relatório mensal de despesas em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Despesas + mês de referência          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Venc. | Descrição | Categoria | Status | Valor      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: total do mês / pago / em aberto                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestor-api/internal/application/usecase"
	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/expense"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 24, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ExpenseReportGenerator implementa usecase.ExpenseReportGenerator com Maroto v2.
type ExpenseReportGenerator struct{}

var _ usecase.ExpenseReportGenerator = (*ExpenseReportGenerator)(nil)

// NewExpenseReportGenerator constrói o gerador.
func NewExpenseReportGenerator() *ExpenseReportGenerator { return &ExpenseReportGenerator{} }

// GenerateMonthlyReport gera o PDF e devolve seus bytes. As despesas chegam
// ordenadas por vencimento; a ordem é preservada na tabela.
func (g *ExpenseReportGenerator) GenerateMonthlyReport(month time.Time, expenses []*entity.Expense) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Despesas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(month, len(expenses)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(expenses) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(expenses))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título + mês de referência (esq) e contagem (dir).
func headerRow(month time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE DESPESAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Mês de referência: "+month.Format("01/2006"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d lançamento(s)", count), props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de lançamentos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Venc.", 2, align.Left),
		h("Descrição", 4, align.Left),
		h("Categoria", 2, align.Left),
		h("Status", 2, align.Left),
		h("Valor", 2, align.Right),
	)
}

// tableDetailRows: uma linha por despesa.
func tableDetailRows(expenses []*entity.Expense) []core.Row {
	result := make([]core.Row, 0, len(expenses))
	for _, e := range expenses {
		due := "—"
		if e.DueDate != nil {
			due = e.DueDate.Format("02/01/2006")
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				due,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				e.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.Status,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+e.Value.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total do mês, pago e em aberto, alinhados à direita.
func totalsRow(expenses []*entity.Expense) core.Row {
	total := decimal.Zero
	paid := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Value)
		if e.Status == expense.StatusPaid {
			paid = paid.Add(e.Value)
		}
	}
	open := total.Sub(paid)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Pago:"),
			label("Em aberto:"),
			grandLabel("TOTAL DO MÊS:"),
		),
		col.New(4).Add(
			value("R$ "+paid.StringFixed(2)),
			value("R$ "+open.StringFixed(2)),
			grandValue("R$ "+total.StringFixed(2)),
		),
	)
}
