package schema

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
	"github.com/seu-usuario/gestor-api/internal/domain/expense"
)

// Normalizadores: convertem o corpo bruto da requisição (mapa não tipado,
// resultado do decode JSON) no registro canônico de cada entidade. São
// funções puras de melhor esforço: nunca retornam erro; toda rejeição
// acontece no validador.

// dateLayoutBR formato textual aceito nos campos de data dos formulários.
const dateLayoutBR = "02/01/2006"

// NormalizeCustomer normaliza a entrada de cliente: trim em textos, data de
// nascimento em DD/MM/YYYY, pedidos como sequência (vazia quando ausente ou
// malformada).
func NormalizeCustomer(in map[string]any) *entity.Customer {
	return &entity.Customer{
		Name:      textField(in, "name"),
		Email:     textField(in, "email"),
		Phone:     textField(in, "phone"),
		CPF:       textField(in, "cpf"),
		Zipcode:   textField(in, "zipcode"),
		Address:   textField(in, "address"),
		Birthdate: dateField(in, "birthdate"),
		Gender:    selectField(in, "gender"),
		Orders:    ordersField(in, "orders"),
	}
}

// NormalizeProduct normaliza a entrada de produto. SKU sobe para maiúsculas;
// campos numéricos ausentes ou inválidos viram 0.
func NormalizeProduct(in map[string]any) *entity.Product {
	return &entity.Product{
		SKU:       strings.ToUpper(textField(in, "sku")),
		Name:      textField(in, "name"),
		Category:  textField(in, "category"),
		CostPrice: decimalField(in, "costPrice"),
		SalePrice: decimalField(in, "salePrice"),
		ImageURL:  selectField(in, "imageUrl"),
		Stock:     int64(intField(in, "stock")),
	}
}

// NormalizeSupplier normaliza a entrada de fornecedor (trim em todos os textos).
func NormalizeSupplier(in map[string]any) *entity.Supplier {
	return &entity.Supplier{
		CNPJ:              textField(in, "cnpj"),
		Name:              textField(in, "name"),
		TradeName:         textField(in, "tradeName"),
		StateRegistration: textField(in, "stateRegistration"),
		Phone:             textField(in, "phone"),
		State:             textField(in, "state"),
	}
}

// NormalizeExpense normaliza a entrada de despesa e, quando o tipo é parcela
// mensal com vencimento presente e quantidade positiva, gera o cronograma de
// parcelas com a estratégia de arredondamento configurada.
//
// Status e History não são aceitos do chamador: o status é derivado e o
// histórico é append-only, ambos responsabilidade do orquestrador.
func NormalizeExpense(in map[string]any, strategy expense.RoundingStrategy) *entity.Expense {
	due := dateField(in, "dueDate")
	installments := intField(in, "installments")
	tipo := selectField(in, "type")
	value := decimalField(in, "value")

	var installmentsData []entity.Installment
	if tipo == expense.TypeMonthly && installments > 0 && due != nil {
		installmentsData = expense.BuildInstallments(value, installments, *due, strategy)
	}
	if installmentsData == nil {
		installmentsData = []entity.Installment{}
	}

	return &entity.Expense{
		Date:             dateField(in, "date"),
		DueDate:          due,
		PaymentDate:      dateField(in, "paymentDate"),
		Description:      textField(in, "description"),
		Category:         selectField(in, "category"),
		Type:             tipo,
		PaymentMethod:    selectField(in, "paymentMethod"),
		Value:            value,
		Installments:     installments,
		InstallmentsData: installmentsData,
	}
}

// NormalizeOrder normaliza um snapshot de pedido para anexar ao cliente.
// Defaults: data = now, itens = vazio, total = 0, status "pendente",
// canal "Website". O orderId fica vazio quando ausente; quem anexa decide o
// identificador definitivo.
func NormalizeOrder(in map[string]any, now time.Time) entity.Order {
	order := entity.Order{
		OrderID: textField(in, "orderId"),
		Date:    now,
		Items:   itemsField(in, "items"),
		Total:   decimalField(in, "total"),
		Status:  selectField(in, "status"),
		Channel: selectField(in, "channel"),
	}
	if d := anyDate(in["date"]); d != nil {
		order.Date = *d
	}
	if order.Status == "" {
		order.Status = "pendente"
	}
	if order.Channel == "" {
		order.Channel = "Website"
	}
	return order
}

// ── coerções de campo ─────────────────────────────────────────────────────────

// textField devolve o valor string do campo com trim; qualquer outro tipo vira "".
func textField(in map[string]any, key string) string {
	s, _ := in[key].(string)
	return strings.TrimSpace(s)
}

// selectField devolve o valor string cru (sem trim), "" quando ausente.
func selectField(in map[string]any, key string) string {
	s, _ := in[key].(string)
	return s
}

// decimalField coerce números vindos do JSON (float64, string, int) para
// decimal; ausente ou inválido vira 0.
func decimalField(in map[string]any, key string) decimal.Decimal {
	switch v := in[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// intField coerce para inteiro truncando; ausente ou inválido vira 0.
func intField(in map[string]any, key string) int {
	return int(decimalField(in, key).IntPart())
}

// dateField lê uma data textual DD/MM/YYYY; ausente ou inválida vira nil,
// nunca erro.
func dateField(in map[string]any, key string) *time.Time {
	s, _ := in[key].(string)
	return parseDateBR(s)
}

// parseDateBR converte DD/MM/YYYY em time.Time (meia-noite local); devolve
// nil quando a string é vazia ou não parseia.
func parseDateBR(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayoutBR, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// anyDate aceita DD/MM/YYYY, YYYY-MM-DD ou RFC3339 (usado em pedidos, onde o
// front envia ISO).
func anyDate(v any) *time.Time {
	s, _ := v.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{dateLayoutBR, "2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// ordersField coerce a sequência de pedidos; ausente ou malformada vira vazia.
func ordersField(in map[string]any, key string) []entity.Order {
	raw, ok := in[key].([]any)
	if !ok {
		return []entity.Order{}
	}
	out := make([]entity.Order, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, NormalizeOrder(m, time.Now()))
	}
	return out
}

// itemsField coerce a lista de itens de um pedido; cada item é mantido como
// documento livre.
func itemsField(in map[string]any, key string) []map[string]any {
	raw, ok := in[key].([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
