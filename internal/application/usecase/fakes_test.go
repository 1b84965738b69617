package usecase_test

// Fakes em memória dos portos de persistência, usados pelos testes dos casos
// de uso. Implementam o mesmo contrato dos adaptadores Postgres: Get devolve
// (nil, nil) quando o registro não existe e Delete devolve false quando nada
// foi removido.

import (
	"sync"
	"time"

	"github.com/seu-usuario/gestor-api/internal/domain/entity"
)

// fakeSequence aloca IDs por coleção de forma atômica, como o contador no banco.
type fakeSequence struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func newFakeSequence() *fakeSequence {
	return &fakeSequence{seqs: make(map[string]int64)}
}

func (f *fakeSequence) Next(collection string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seqs[collection]++
	return f.seqs[collection], nil
}

// ── clientes ──────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	mu    sync.Mutex
	items map[int64]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: make(map[int64]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) GetByPhone(phone string, excludeID int64) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.Phone == phone && c.ID != excludeID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) List(search string) ([]*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Customer, 0, len(f.items))
	for _, c := range f.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) Delete(id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeCustomerRepo) AppendOrder(id int64, order entity.Order, updatedAt time.Time) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	c.Orders = append(c.Orders, order)
	c.UpdatedAt = updatedAt
	cp := *c
	return &cp, nil
}

// ── produtos ──────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu    sync.Mutex
	items map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[int64]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySKU(sku string, excludeID int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.SKU == sku && p.ID != excludeID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(search string) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Product, 0, len(f.items))
	for _, p := range f.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

// ── fornecedores ──────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	mu    sync.Mutex
	items map[int64]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{items: make(map[int64]*entity.Supplier)}
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSupplierRepo) GetByCNPJ(cnpj string, excludeID int64) (*entity.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.items {
		if s.CNPJ == cnpj && s.ID != excludeID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) List(search string) ([]*entity.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(f.items))
	for _, s := range f.items {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSupplierRepo) Update(s *entity.Supplier) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) Delete(id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

// ── despesas ──────────────────────────────────────────────────────────────────

type fakeExpenseRepo struct {
	mu    sync.Mutex
	items map[int64]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{items: make(map[int64]*entity.Expense)}
}

func (f *fakeExpenseRepo) Create(e *entity.Expense) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeExpenseRepo) GetByID(id int64) (*entity.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeExpenseRepo) List(search string) ([]*entity.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Expense, 0, len(f.items))
	for _, e := range f.items {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeExpenseRepo) ListByDueDateRange(from, to time.Time) ([]*entity.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Expense
	for _, e := range f.items {
		if e.DueDate == nil {
			continue
		}
		if !e.DueDate.Before(from) && e.DueDate.Before(to) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) Update(e *entity.Expense) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeExpenseRepo) Delete(id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}
