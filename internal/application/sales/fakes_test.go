package sales

import (
	"context"
	"sort"

	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por los fakes de repositorio.
// El txRunner de test toma un snapshot antes de ejecutar la función y lo
// restaura si falla, imitando el commit/rollback del TxRunner real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	businesses map[string]entity.Business
	employees  map[string]entity.BusinessEmployee // clave businessID+"|"+userID
	products   map[string]entity.Product
	sales      map[string]entity.Sale
	saleItems  map[string][]entity.SaleItem // por saleID
	invoices   map[string]entity.Invoice

	// Colisiones de número de factura forzadas: mientras quede saldo, cada
	// Create de factura falla con ErrDuplicate. No se restaura en rollback.
	forcedNumberCollisions int
	invoiceCreateCalls     int

	// Productos bloqueados con FOR UPDATE, en orden de llamada.
	lockOrder []string
}

func newMemStore() *memStore {
	return &memStore{
		businesses: map[string]entity.Business{},
		employees:  map[string]entity.BusinessEmployee{},
		products:   map[string]entity.Product{},
		sales:      map[string]entity.Sale{},
		saleItems:  map[string][]entity.SaleItem{},
		invoices:   map[string]entity.Invoice{},
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.businesses {
		cp.businesses[k] = v
	}
	for k, v := range s.employees {
		cp.employees[k] = v
	}
	for k, v := range s.products {
		cp.products[k] = v
	}
	for k, v := range s.sales {
		cp.sales[k] = v
	}
	for k, v := range s.saleItems {
		cp.saleItems[k] = append([]entity.SaleItem(nil), v...)
	}
	for k, v := range s.invoices {
		cp.invoices[k] = v
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.businesses = snap.businesses
	s.employees = snap.employees
	s.products = snap.products
	s.sales = snap.sales
	s.saleItems = snap.saleItems
	s.invoices = snap.invoices
}

func (s *memStore) addBusiness(b entity.Business) { s.businesses[b.ID] = b }
func (s *memStore) addEmployee(e entity.BusinessEmployee) {
	s.employees[e.BusinessID+"|"+e.UserID] = e
}
func (s *memStore) addProduct(p entity.Product) { s.products[p.ID] = p }

// ── BusinessRepository ────────────────────────────────────────────────────────

type fakeBusinessRepo struct{ store *memStore }

var _ repository.BusinessRepository = (*fakeBusinessRepo)(nil)

func (r *fakeBusinessRepo) Create(b *entity.Business) error {
	r.store.businesses[b.ID] = *b
	return nil
}

func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	b, ok := r.store.businesses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBusinessRepo) GetByAPIKey(apiKey string) (*entity.Business, error) {
	for _, b := range r.store.businesses {
		if b.APIKey != nil && *b.APIKey == apiKey {
			bb := b
			return &bb, nil
		}
	}
	return nil, nil
}

func (r *fakeBusinessRepo) Update(b *entity.Business) error {
	r.store.businesses[b.ID] = *b
	return nil
}

func (r *fakeBusinessRepo) UpdateAPIKey(businessID, apiKey string) error {
	b, ok := r.store.businesses[businessID]
	if !ok {
		return domain.ErrNotFound
	}
	b.APIKey = &apiKey
	r.store.businesses[businessID] = b
	return nil
}

func (r *fakeBusinessRepo) ListAccessibleByUser(userID string) ([]*entity.Business, error) {
	seen := map[string]bool{}
	var out []*entity.Business
	for _, b := range r.store.businesses {
		if b.OwnerID == userID {
			bb := b
			out = append(out, &bb)
			seen[b.ID] = true
		}
	}
	for _, e := range r.store.employees {
		if e.UserID == userID && !seen[e.BusinessID] {
			if b, ok := r.store.businesses[e.BusinessID]; ok {
				bb := b
				out = append(out, &bb)
				seen[b.ID] = true
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBusinessRepo) Delete(id string) error {
	delete(r.store.businesses, id)
	return nil
}

// ── EmployeeRepository ────────────────────────────────────────────────────────

type fakeEmployeeRepo struct{ store *memStore }

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func (r *fakeEmployeeRepo) Create(e *entity.BusinessEmployee) error {
	key := e.BusinessID + "|" + e.UserID
	if _, ok := r.store.employees[key]; ok {
		return domain.ErrDuplicate
	}
	r.store.employees[key] = *e
	return nil
}

func (r *fakeEmployeeRepo) GetByBusinessAndUser(businessID, userID string) (*entity.BusinessEmployee, error) {
	e, ok := r.store.employees[businessID+"|"+userID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) ListByBusiness(businessID string) ([]*entity.BusinessEmployee, error) {
	var out []*entity.BusinessEmployee
	for _, e := range r.store.employees {
		if e.BusinessID == businessID {
			ee := e
			out = append(out, &ee)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Delete(businessID, userID string) error {
	delete(r.store.employees, businessID+"|"+userID)
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *memStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.store.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	r.store.lockOrder = append(r.store.lockOrder, id)
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.store.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID string, qty int) (bool, error) {
	p, ok := r.store.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	r.store.products[productID] = p
	return true, nil
}

func (r *fakeProductRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.BusinessID == businessID {
			pp := p
			out = append(out, &pp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) ListLowStock(businessIDs []string, threshold int) ([]*entity.Product, error) {
	inSet := map[string]bool{}
	for _, id := range businessIDs {
		inSet[id] = true
	}
	var out []*entity.Product
	for _, p := range r.store.products {
		if inSet[p.BusinessID] && p.Active && p.Stock <= threshold {
			pp := p
			out = append(out, &pp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

// ── SaleRepository ────────────────────────────────────────────────────────────

type fakeSaleRepo struct{ store *memStore }

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.store.sales[sale.ID] = *sale
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.store.saleItems[item.SaleID] = append(r.store.saleItems[item.SaleID], *item)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, item := range r.store.saleItems[saleID] {
		it := item
		out = append(out, &it)
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		if s.BusinessID == businessID {
			ss := s
			out = append(out, &ss)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── InvoiceRepository ─────────────────────────────────────────────────────────

type fakeInvoiceRepo struct{ store *memStore }

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func (r *fakeInvoiceRepo) Create(invoice *entity.Invoice) error {
	r.store.invoiceCreateCalls++
	if r.store.forcedNumberCollisions > 0 {
		r.store.forcedNumberCollisions--
		return domain.ErrDuplicate
	}
	for _, inv := range r.store.invoices {
		if inv.Number == invoice.Number {
			return domain.ErrDuplicate
		}
	}
	r.store.invoices[invoice.ID] = *invoice
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.store.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) GetBySaleID(saleID string) (*entity.Invoice, error) {
	for _, inv := range r.store.invoices {
		if inv.SaleID == saleID {
			ii := inv
			return &ii, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(invoice *entity.Invoice) error {
	if _, ok := r.store.invoices[invoice.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.invoices[invoice.ID] = *invoice
	return nil
}

func (r *fakeInvoiceRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.store.invoices {
		if inv.BusinessID == businessID {
			ii := inv
			out = append(out, &ii)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── SalesTxRunner ─────────────────────────────────────────────────────────────

type fakeTxRunner struct{ store *memStore }

var _ SalesTxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	snap := t.store.snapshot()
	err := fn(
		&fakeProductRepo{store: t.store},
		&fakeSaleRepo{store: t.store},
		&fakeInvoiceRepo{store: t.store},
	)
	if err != nil {
		t.store.restore(snap)
	}
	return err
}
