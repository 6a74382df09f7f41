package sales_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jcastan/inventario-ventas/internal/domain"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
	"github.com/jcastan/inventario-ventas/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// fakeProductRepo repositorio de productos en memoria para los tests.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Stock < p.MinStock {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) SetStock(productID string, stock int) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) AddStock(productID string, qty int) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += qty
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID string, qty int) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) stockOf(id string) int {
	if p, ok := r.products[id]; ok {
		return p.Stock
	}
	return -1
}

// fakeCustomerRepo repositorio de clientes en memoria.
type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range customers {
		cp := *c
		r.customers[c.ID] = &cp
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByDocument(document string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Document == document {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

func (r *fakeCustomerRepo) Search(fragment string) ([]*entity.Customer, error) {
	q := strings.ToLower(fragment)
	var out []*entity.Customer
	for _, c := range r.customers {
		if strings.Contains(strings.ToLower(c.FirstName), q) ||
			strings.Contains(strings.ToLower(c.LastName), q) ||
			strings.Contains(strings.ToLower(c.Document), q) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

// fakeSaleRepo persistencia de ventas en memoria.
type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	items []*entity.SaleItem
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	for _, existing := range r.sales {
		if existing.Code == s.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	cp := *it
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeSaleRepo) UpdateTotal(saleID string, total decimal.Decimal) error {
	s, ok := r.sales[saleID]
	if !ok {
		return domain.ErrNotFound
	}
	s.Total = total
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.items {
		if it.SaleID == saleID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if filter.From != nil && s.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !s.Date.Before(*filter.To) {
			continue
		}
		if filter.CustomerID != "" && s.CustomerID != filter.CustomerID {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// fakeMovementRepo libro de movimientos en memoria.
type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.movements[i].ProductID == productID {
			cp := *r.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeSaleTxRunner ejecuta fn contra los fakes y deshace los cambios si fn
// falla, imitando el rollback de una transacción real.
type fakeSaleTxRunner struct {
	sales     *fakeSaleRepo
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (tx *fakeSaleTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	saleSnap := make(map[string]*entity.Sale, len(tx.sales.sales))
	for id, s := range tx.sales.sales {
		cp := *s
		saleSnap[id] = &cp
	}
	itemSnap := len(tx.sales.items)
	productSnap := make(map[string]*entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		cp := *p
		productSnap[id] = &cp
	}
	movementSnap := len(tx.movements.movements)

	if err := fn(tx.sales, tx.products, tx.movements); err != nil {
		tx.sales.sales = saleSnap
		tx.sales.items = tx.sales.items[:itemSnap]
		tx.products.products = productSnap
		tx.movements.movements = tx.movements.movements[:movementSnap]
		return err
	}
	return nil
}

// fakeReportRepo devuelve agregaciones fijas y captura el filtro recibido.
type fakeReportRepo struct {
	lastFilter repository.SaleFilter
	byDay      []repository.DayTotal
	byProduct  []repository.ProductTotal
}

func (r *fakeReportRepo) TotalsByDay(_ context.Context, filter repository.SaleFilter) ([]repository.DayTotal, error) {
	r.lastFilter = filter
	return r.byDay, nil
}

func (r *fakeReportRepo) TotalsByProduct(_ context.Context, filter repository.SaleFilter) ([]repository.ProductTotal, error) {
	r.lastFilter = filter
	return r.byProduct, nil
}
