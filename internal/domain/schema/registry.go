// Package schema é a fonte única de verdade dos quatro cadastros: campos,
// rótulos, tipos, regras de obrigatoriedade e campos de busca/listagem.
// O registry é dado declarativo imutável consumido pelos normalizadores,
// pelos validadores e pelos repositórios; não há mutação em runtime.
package schema

// FieldType tipo de valor de um campo do schema.
type FieldType string

const (
	TypeText   FieldType = "text"
	TypeEmail  FieldType = "email"
	TypePhone  FieldType = "telefone"
	TypeCPF    FieldType = "cpf"
	TypeCNPJ   FieldType = "cnpj"
	TypeCEP    FieldType = "cep"
	TypeDate   FieldType = "date"
	TypeNumber FieldType = "number"
	TypeSelect FieldType = "select"
	TypeArray  FieldType = "array"
)

// Field metadado declarativo de um campo de entidade.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Required bool
	Visible  bool
	Readonly bool
	Options  []string // conjunto fechado de valores para TypeSelect
}

// Schema metadado de um cadastro completo.
type Schema struct {
	Key        string // chave usada pelo front-end
	Display    string
	Collection string // nome da coleção/tabela no banco
	IDField    string
	Fields     []Field
	// ListFields subconjunto exibido em listagens.
	ListFields []string
	// SearchFields subconjunto que participa da busca por substring
	// (case-insensitive, combinada com OR).
	SearchFields []string
}

// Field devolve o metadado do campo pelo nome, ou nil se não existir.
func (s *Schema) Field(name string) *Field {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// Opções fechadas das despesas.
var (
	ExpenseCategories     = []string{"Conta variável", "Conta fixa"}
	ExpenseTypes          = []string{"Parcela mensal", "Pag. único"}
	ExpensePaymentMethods = []string{"Boleto Bancário", "Cartão de Créd.", "Cartão de Déb.", "Dinheiro", "PIX"}
)

// Customer schema do cadastro de clientes.
var Customer = Schema{
	Key:        "clientes",
	Display:    "Cadastro de Clientes",
	Collection: "customers",
	IDField:    "id",
	Fields: []Field{
		{Name: "id", Label: "ID", Type: TypeNumber, Required: true, Readonly: true},
		{Name: "name", Label: "Nome", Type: TypeText, Required: true, Visible: true},
		{Name: "email", Label: "E-mail", Type: TypeEmail, Visible: true},
		{Name: "phone", Label: "Telefone", Type: TypePhone, Required: true, Visible: true},
		{Name: "cpf", Label: "CPF", Type: TypeCPF, Visible: true},
		{Name: "zipcode", Label: "CEP", Type: TypeCEP, Visible: true},
		{Name: "address", Label: "Endereço", Type: TypeText, Visible: true},
		{Name: "birthdate", Label: "Data de Nascimento", Type: TypeDate, Visible: true},
		{Name: "gender", Label: "Gênero", Type: TypeSelect, Visible: true, Options: []string{"Masculino", "Feminino", "Outro"}},
		{Name: "orders", Label: "Pedidos", Type: TypeArray},
	},
	ListFields:   []string{"name", "email", "phone"},
	SearchFields: []string{"name", "email", "phone"},
}

// Product schema do cadastro de produtos.
var Product = Schema{
	Key:        "produtos",
	Display:    "Cadastro de Produtos",
	Collection: "products",
	IDField:    "id",
	Fields: []Field{
		{Name: "id", Label: "ID", Type: TypeNumber, Readonly: true},
		{Name: "sku", Label: "SKU", Type: TypeText, Required: true, Visible: true},
		{Name: "category", Label: "Categoria", Type: TypeSelect, Required: true, Visible: true, Options: []string{"Masculino", "Feminino"}},
		{Name: "name", Label: "Nome do Produto", Type: TypeText, Required: true, Visible: true},
		{Name: "costPrice", Label: "Preço de Custo", Type: TypeNumber, Required: true, Visible: true},
		{Name: "salePrice", Label: "Preço de Venda", Type: TypeNumber, Required: true, Visible: true},
		{Name: "imageUrl", Label: "Imagem do Produto", Type: TypeText, Visible: true},
		{Name: "stock", Label: "Estoque", Type: TypeNumber},
	},
	ListFields:   []string{"sku", "name", "category", "salePrice"},
	SearchFields: []string{"sku", "name", "category"},
}

// Supplier schema do cadastro de fornecedores.
var Supplier = Schema{
	Key:        "fornecedores",
	Display:    "Cadastro de Fornecedores",
	Collection: "suppliers",
	IDField:    "id",
	Fields: []Field{
		{Name: "id", Label: "ID", Type: TypeNumber, Readonly: true},
		{Name: "cnpj", Label: "CNPJ", Type: TypeCNPJ, Required: true, Visible: true},
		{Name: "name", Label: "Razão Social", Type: TypeText},
		{Name: "tradeName", Label: "Nome Fantasia", Type: TypeText, Required: true, Visible: true},
		{Name: "stateRegistration", Label: "Inscrição Estadual", Type: TypeText, Visible: true},
		{Name: "phone", Label: "Telefone", Type: TypePhone},
		{Name: "state", Label: "Estado", Type: TypeText, Required: true, Visible: true},
	},
	ListFields:   []string{"cnpj", "tradeName", "stateRegistration", "state"},
	SearchFields: []string{"cnpj", "name", "tradeName"},
}

// Expense schema do cadastro de despesas.
var Expense = Schema{
	Key:        "despesas",
	Display:    "Cadastro de Despesas",
	Collection: "expenses",
	IDField:    "id",
	Fields: []Field{
		{Name: "id", Label: "ID", Type: TypeNumber, Readonly: true},
		{Name: "date", Label: "Data de Pagamento", Type: TypeDate},
		{Name: "dueDate", Label: "Data de Vencimento", Type: TypeDate, Required: true, Visible: true},
		{Name: "description", Label: "Descrição", Type: TypeText, Visible: true},
		{Name: "category", Label: "Categoria", Type: TypeSelect, Required: true, Visible: true, Options: ExpenseCategories},
		{Name: "type", Label: "Tipo", Type: TypeSelect, Required: true, Visible: true, Options: ExpenseTypes},
		{Name: "paymentMethod", Label: "Método de Pagamento", Type: TypeSelect, Required: true, Visible: true, Options: ExpensePaymentMethods},
		{Name: "value", Label: "Valor", Type: TypeNumber, Required: true, Visible: true},
		{Name: "installments", Label: "Parcelas", Type: TypeNumber, Visible: true},
		{Name: "paymentDate", Label: "Data de Efetivação do Pagamento", Type: TypeDate},
		{Name: "status", Label: "Status", Type: TypeSelect, Visible: true, Options: []string{"Pago", "Pendente", "Não pago"}},
		{Name: "history", Label: "Histórico", Type: TypeArray},
	},
	ListFields:   []string{"date", "dueDate", "category", "description", "value", "status"},
	SearchFields: []string{"description", "category", "type", "status"},
}

// all indexa os schemas pela chave do front-end.
var all = map[string]*Schema{
	Customer.Key: &Customer,
	Product.Key:  &Product,
	Supplier.Key: &Supplier,
	Expense.Key:  &Expense,
}

// ByKind devolve o schema pela chave ("clientes", "produtos", "fornecedores",
// "despesas"), ou nil se desconhecida. Nunca gera pânico.
func ByKind(kind string) *Schema {
	return all[kind]
}

// ByCollection devolve o schema pelo nome da coleção no banco, ou nil.
func ByCollection(collection string) *Schema {
	for _, s := range all {
		if s.Collection == collection {
			return s
		}
	}
	return nil
}
