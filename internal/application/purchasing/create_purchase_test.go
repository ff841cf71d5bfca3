package purchasing_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcastiblanco/boutique-api/internal/application/dto"
	"github.com/jfcastiblanco/boutique-api/internal/application/purchasing"
	"github.com/jfcastiblanco/boutique-api/internal/domain"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: un proveedor, un producto con dos variantes.
// ──────────────────────────────────────────────────────────────────────────────

func setupPurchase(t *testing.T) (*purchasing.CreatePurchaseUseCase, *fakeTxRunner, *fakeState) {
	t.Helper()
	st := newFakeState()
	st.suppliers[1] = entity.Supplier{ID: 1, Name: "Textiles del Norte", Active: true}
	st.products[10] = entity.Product{ID: 10, Name: "Falda plisada", Price: decimal.RequireFromString("30.00"), Stock: 7, Active: true}
	st.variants[100] = entity.ProductVariant{ID: 100, ProductID: 10, Stock: 5}
	st.variants[101] = entity.ProductVariant{ID: 101, ProductID: 10, Stock: 0}
	st.nextID = 200

	runner := &fakeTxRunner{st: st}
	uc := purchasing.NewCreatePurchaseUseCase(runner, &fakeSupplierRepo{st: st})
	return uc, runner, st
}

func id(v int64) *int64 { return &v }

func precio(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Validación: se rechaza todo antes de abrir la transacción.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_CantidadCeroSeRechazaSinEscribir(t *testing.T) {
	uc, runner, _ := setupPurchase(t)

	_, err := uc.CreatePurchase(context.Background(), nil, dto.CreatePurchaseRequest{
		SupplierID: 1,
		Items: []dto.PurchaseItemRequest{
			{ProductID: 10, VariantID: id(100), Quantity: 0, UnitPrice: precio("10.00")},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "detalles[0].cantidad", "el error debe nombrar el campo inválido")
	assert.Equal(t, 0, runner.calls, "la validación debe fallar antes de la transacción")
}

func TestCreatePurchase_SinDetallesSeRechaza(t *testing.T) {
	uc, runner, _ := setupPurchase(t)

	_, err := uc.CreatePurchase(context.Background(), nil, dto.CreatePurchaseRequest{SupplierID: 1})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "detalles")
	assert.Equal(t, 0, runner.calls)
}

func TestCreatePurchase_PrecioNegativoSeRechaza(t *testing.T) {
	uc, runner, _ := setupPurchase(t)

	_, err := uc.CreatePurchase(context.Background(), nil, dto.CreatePurchaseRequest{
		SupplierID: 1,
		Items: []dto.PurchaseItemRequest{
			{ProductID: 10, VariantID: id(100), Quantity: 1, UnitPrice: precio("-1.00")},
		},
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "precioUnitario")
	assert.Equal(t, 0, runner.calls)
}

func TestCreatePurchase_ProveedorInexistenteDevuelveNotFound(t *testing.T) {
	uc, runner, _ := setupPurchase(t)

	_, err := uc.CreatePurchase(context.Background(), nil, dto.CreatePurchaseRequest{
		SupplierID: 999,
		Items: []dto.PurchaseItemRequest{
			{ProductID: 10, VariantID: id(100), Quantity: 1, UnitPrice: precio("10.00")},
		},
	})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, 0, runner.calls)
}

func TestCreatePurchase_FechaMalformadaSeRechaza(t *testing.T) {
	uc, _, _ := setupPurchase(t)

	_, err := uc.CreatePurchase(context.Background(), nil, dto.CreatePurchaseRequest{
		SupplierID: 1,
		Date:       "03/05/2026",
		Items: []dto.PurchaseItemRequest{
			{ProductID: 10, VariantID: id(100), Quantity: 1, UnitPrice: precio("10.00")},
		},
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "fecha")
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz: stock, asientos y total.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_SumaStockYAsientaIngresosPorLinea(t *testing.T) {
	uc, _, st := setupPurchase(t)
	userID := id(7)

	purchaseID, err := uc.CreatePurchase(context.Background(), userID, dto.CreatePurchaseRequest{
		SupplierID: 1,
		Date:       "2026-08-15",
		Items: []dto.PurchaseItemRequest{
			{ProductID: 10, VariantID: id(100), Quantity: 3, UnitPrice: precio("10.00")},
			{ProductID: 10, VariantID: id(101), Quantity: 2, UnitPrice: precio("20.00")},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, purchaseID)

	// Stock: 5+3 y 0+2.
	assert.Equal(t, int64(8), st.variants[100].Stock)
	assert.Equal(t, int64(2), st.variants[101].Stock)

	// Cabecera con total derivado 3×10 + 2×20 = 70 y auditoría.
	p := st.purchases[purchaseID]
	assert.True(t, p.Total.Equal(precio("70.00")), "total esperado 70.00, fue %s", p.Total)
	require.NotNil(t, p.UserID)
	assert.Equal(t, int64(7), *p.UserID)

	// Dos líneas y dos asientos ingreso referenciando la compra.
	assert.Len(t, st.lines, 2)
	require.Len(t, st.movements, 2)
	for _, m := range st.movements {
		assert.Equal(t, entity.MovementTypeIngreso, m.Type)
		assert.Equal(t, "compra:"+itoa(purchaseID), m.Reference)
		require.NotNil(t, m.UserID)
		assert.Equal(t, int64(7), *m.UserID)
	}
}

// Línea sin variante (ruta legada): asiento contra el producto, sin tocar
// su stock.
func TestCreatePurchase_LineaSinVarianteNoMutaStock(t *testing.T) {
	uc, _, st := setupPurchase(t)

	purchaseID, err := uc.CreatePurchase(context.Background(), nil, dto.CreatePurchaseRequest{
		SupplierID: 1,
		Items: []dto.PurchaseItemRequest{
			{ProductID: 10, Quantity: 4, UnitPrice: precio("5.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), st.products[10].Stock, "el stock del producto no debe cambiar")
	require.Len(t, st.movements, 1)
	for _, m := range st.movements {
		assert.Equal(t, int64(10), m.ProductID)
		assert.Nil(t, m.VariantID)
		assert.Equal(t, entity.MovementTypeIngreso, m.Type)
		assert.Equal(t, int64(4), m.Quantity)
		assert.Equal(t, "compra:"+itoa(purchaseID), m.Reference)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad: un fallo en cualquier línea revierte todo.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_VarianteInexistenteRevierteTodo(t *testing.T) {
	uc, _, st := setupPurchase(t)

	_, err := uc.CreatePurchase(context.Background(), nil, dto.CreatePurchaseRequest{
		SupplierID: 1,
		Items: []dto.PurchaseItemRequest{
			{ProductID: 10, VariantID: id(100), Quantity: 3, UnitPrice: precio("10.00")},
			{ProductID: 10, VariantID: id(999), Quantity: 2, UnitPrice: precio("20.00")},
		},
	})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, int64(5), st.variants[100].Stock, "la primera línea también debe revertirse")
	assert.Empty(t, st.purchases)
	assert.Empty(t, st.lines)
	assert.Empty(t, st.movements)
}

func TestCreatePurchase_VarianteDeOtroProductoRevierteTodo(t *testing.T) {
	uc, _, st := setupPurchase(t)
	st.products[20] = entity.Product{ID: 20, Name: "Chaqueta denim", Price: precio("80.00"), Active: true}

	_, err := uc.CreatePurchase(context.Background(), nil, dto.CreatePurchaseRequest{
		SupplierID: 1,
		Items: []dto.PurchaseItemRequest{
			// La variante 100 pertenece al producto 10, no al 20.
			{ProductID: 20, VariantID: id(100), Quantity: 1, UnitPrice: precio("10.00")},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "idVariante")
	assert.Equal(t, int64(5), st.variants[100].Stock)
	assert.Empty(t, st.purchases)
	assert.Empty(t, st.movements)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
