package inventory_test

import (
	"context"

	"github.com/jfcastiblanco/boutique-api/internal/application/inventory"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
	"github.com/jfcastiblanco/boutique-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner trabaja sobre una copia del estado y solo la
// promueve si la función termina sin error, imitando commit/rollback.
// ──────────────────────────────────────────────────────────────────────────────

type fakeState struct {
	products  map[int64]entity.Product
	variants  map[int64]entity.ProductVariant
	movements map[int64]entity.StockMovement
	nextID    int64
}

func newFakeState() *fakeState {
	return &fakeState{
		products:  map[int64]entity.Product{},
		variants:  map[int64]entity.ProductVariant{},
		movements: map[int64]entity.StockMovement{},
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	c.nextID = s.nextID
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.variants {
		c.variants[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	return c
}

func (s *fakeState) id() int64 {
	s.nextID++
	return s.nextID
}

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
	return nil, nil
}

func (r *fakeVariantRepo) ListByProducts(productIDs []int64) (map[int64][]*entity.ProductVariant, error) {
	return nil, nil
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

type fakeTxRunner struct {
	st    *fakeState
	calls int
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
) error) error {
	tr.calls++
	work := tr.st.clone()
	err := fn(
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
