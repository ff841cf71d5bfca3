package purchasing_test

import (
	"context"

	"github.com/jfcastiblanco/boutique-api/internal/application/purchasing"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner trabaja sobre una copia del estado y solo la
// promueve si la función termina sin error, imitando commit/rollback.
// ──────────────────────────────────────────────────────────────────────────────

type fakeState struct {
	suppliers map[int64]entity.Supplier
	products  map[int64]entity.Product
	variants  map[int64]entity.ProductVariant
	purchases map[int64]entity.Purchase
	lines     []entity.PurchaseLineItem
	movements map[int64]entity.StockMovement
	nextID    int64
}

func newFakeState() *fakeState {
	return &fakeState{
		suppliers: map[int64]entity.Supplier{},
		products:  map[int64]entity.Product{},
		variants:  map[int64]entity.ProductVariant{},
		purchases: map[int64]entity.Purchase{},
		movements: map[int64]entity.StockMovement{},
		nextID:    0,
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	c.nextID = s.nextID
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.variants {
		c.variants[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	c.lines = append(c.lines, s.lines...)
	for k, v := range s.movements {
		c.movements[k] = v
	}
	return c
}

func (s *fakeState) id() int64 {
	s.nextID++
	return s.nextID
}

// ── SupplierRepository ────────────────────────────────────────────────────────

type fakeSupplierRepo struct{ st *fakeState }

func (r *fakeSupplierRepo) Create(supplier *entity.Supplier) error {
	supplier.ID = r.st.id()
	r.st.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	if s, ok := r.st.suppliers[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Update(supplier *entity.Supplier) error {
	r.st.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}

func (r *fakeSupplierRepo) Delete(id int64) error {
	delete(r.st.suppliers, id)
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ st *fakeState }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.st.id()
	r.st.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if p, ok := r.st.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.st.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.st.products, id)
	return nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(id int64, stock int64) error {
	p := r.st.products[id]
	p.Stock = stock
	r.st.products[id] = p
	return nil
}

// ── VariantRepository ─────────────────────────────────────────────────────────

type fakeVariantRepo struct{ st *fakeState }

func (r *fakeVariantRepo) Create(v *entity.ProductVariant) error {
	v.ID = r.st.id()
	r.st.variants[v.ID] = *v
	return nil
}

func (r *fakeVariantRepo) GetByID(id int64) (*entity.ProductVariant, error) {
	if v, ok := r.st.variants[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r *fakeVariantRepo) ListByProduct(productID int64) ([]*entity.ProductVariant, error) {
	var out []*entity.ProductVariant
	for _, v := range r.st.variants {
		if v.ProductID == productID {
			v := v
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *fakeVariantRepo) ListByProducts(productIDs []int64) (map[int64][]*entity.ProductVariant, error) {
	out := map[int64][]*entity.ProductVariant{}
	for _, id := range productIDs {
		vs, _ := r.ListByProduct(id)
		if len(vs) > 0 {
			out[id] = vs
		}
	}
	return out, nil
}

func (r *fakeVariantRepo) Update(v *entity.ProductVariant) error {
	r.st.variants[v.ID] = *v
	return nil
}

func (r *fakeVariantRepo) Delete(id int64) error {
	delete(r.st.variants, id)
	return nil
}

func (r *fakeVariantRepo) GetForUpdate(id int64) (*entity.ProductVariant, error) {
	return r.GetByID(id)
}

func (r *fakeVariantRepo) UpdateStock(id int64, stock int64) error {
	v := r.st.variants[id]
	v.Stock = stock
	r.st.variants[id] = v
	return nil
}

// ── MovementRepository ────────────────────────────────────────────────────────

type fakeMovementRepo struct{ st *fakeState }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = r.st.id()
	r.st.movements[m.ID] = *m
	return nil
}

func (r *fakeMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	if m, ok := r.st.movements[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *fakeMovementRepo) Delete(id int64) error {
	delete(r.st.movements, id)
	return nil
}

func (r *fakeMovementRepo) List(productID *int64, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.st.movements {
		if productID == nil || m.ProductID == *productID {
			m := m
			out = append(out, &m)
		}
	}
	return out, nil
}

// ── PurchaseRepository ────────────────────────────────────────────────────────

type fakePurchaseRepo struct{ st *fakeState }

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	p.ID = r.st.id()
	r.st.purchases[p.ID] = *p
	return nil
}

func (r *fakePurchaseRepo) CreateLineItems(items []*entity.PurchaseLineItem) error {
	for _, it := range items {
		it.ID = r.st.id()
		r.st.lines = append(r.st.lines, *it)
	}
	return nil
}

func (r *fakePurchaseRepo) GetByID(id int64) (*entity.Purchase, error) {
	if p, ok := r.st.purchases[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePurchaseRepo) ListItems(purchaseID int64) ([]*repository.PurchaseItemView, error) {
	return nil, nil
}

func (r *fakePurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	return nil, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	st    *fakeState
	calls int
}

var _ purchasing.TxRunner = (*fakeTxRunner)(nil)

func (tr *fakeTxRunner) RunPurchase(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	movRepo repository.MovementRepository,
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
) error) error {
	tr.calls++
	work := tr.st.clone()
	err := fn(
		&fakePurchaseRepo{st: work},
		&fakeMovementRepo{st: work},
		&fakeVariantRepo{st: work},
		&fakeProductRepo{st: work},
	)
	if err != nil {
		return err
	}
	*tr.st = *work
	return nil
}
