package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jfcastiblanco/boutique-api/internal/domain/catalog"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func producto(precio string, stock int64) *entity.Product {
	return &entity.Product{
		ID:    1,
		Name:  "Blusa manga larga",
		Price: decimal.RequireFromString(precio),
		Stock: stock,
	}
}

func variante(precio *string, stock int64, talla *string) *entity.ProductVariant {
	v := &entity.ProductVariant{ProductID: 1, Stock: stock, SizeCode: talla}
	if precio != nil {
		p := decimal.RequireFromString(*precio)
		v.Price = &p
	}
	return v
}

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Rango de precios
// ──────────────────────────────────────────────────────────────────────────────

// Variantes con precios 10, 15 y 10 → rango [10, 15] con tieneRango true.
func TestSummarize_RangoDePrecios(t *testing.T) {
	p := producto("12.00", 0)
	vs := []*entity.ProductVariant{
		variante(str("10.00"), 1, nil),
		variante(str("15.00"), 1, nil),
		variante(str("10.00"), 1, nil),
	}

	s := catalog.Summarize(p, vs)

	assert.True(t, s.PriceMin.Equal(decimal.RequireFromString("10.00")), "el mínimo debe ser 10")
	assert.True(t, s.PriceMax.Equal(decimal.RequireFromString("15.00")), "el máximo debe ser 15")
	assert.True(t, s.HasRange, "min != max debe marcar tieneRango")
}

// Una variante sin precio propio hereda el del producto.
func TestSummarize_VarianteSinPrecioHeredaElDelProducto(t *testing.T) {
	p := producto("20.00", 0)
	vs := []*entity.ProductVariant{
		variante(nil, 3, nil),
		variante(str("25.00"), 2, nil),
	}

	s := catalog.Summarize(p, vs)

	assert.True(t, s.PriceMin.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, s.PriceMax.Equal(decimal.RequireFromString("25.00")))
	assert.True(t, s.HasRange)
}

// Todas las variantes al mismo precio → rango colapsado, tieneRango false.
func TestSummarize_PrecioUniformeNoTieneRango(t *testing.T) {
	p := producto("18.00", 0)
	vs := []*entity.ProductVariant{
		variante(str("18.00"), 4, nil),
		variante(nil, 4, nil), // hereda 18.00
	}

	s := catalog.Summarize(p, vs)

	assert.False(t, s.HasRange)
	assert.True(t, s.PriceMin.Equal(s.PriceMax))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock total y stock bajo
// ──────────────────────────────────────────────────────────────────────────────

// El stock total es la suma de variantes; el del producto no cuenta cuando
// hay variantes.
func TestSummarize_StockTotalSumaVariantes(t *testing.T) {
	p := producto("10.00", 99)
	vs := []*entity.ProductVariant{
		variante(nil, 3, nil),
		variante(nil, 2, nil),
	}

	s := catalog.Summarize(p, vs)

	assert.Equal(t, int64(5), s.TotalStock)
}

// stockBajo: true solo si 0 < total <= umbral.
func TestSummarize_StockBajoEnLosBordes(t *testing.T) {
	cases := []struct {
		nombre string
		stock  int64
		bajo   bool
	}{
		{"total igual al umbral", catalog.LowStockThreshold, true},
		{"total uno sobre el umbral", catalog.LowStockThreshold + 1, false},
		{"agotado no es stock bajo", 0, false},
		{"una unidad", 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			s := catalog.Summarize(producto("10.00", 0), []*entity.ProductVariant{
				variante(nil, tc.stock, nil),
			})
			assert.Equal(t, tc.bajo, s.LowStock)
		})
	}
}

// Sin variantes el stock y el precio salen del producto.
func TestSummarize_SinVariantesUsaElProducto(t *testing.T) {
	s := catalog.Summarize(producto("30.00", 4), nil)

	assert.Equal(t, int64(4), s.TotalStock)
	assert.True(t, s.LowStock)
	assert.False(t, s.HasRange)
	assert.True(t, s.PriceMin.Equal(decimal.RequireFromString("30.00")))
	assert.Empty(t, s.SizeStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock por talla
// ──────────────────────────────────────────────────────────────────────────────

// Las tallas se agrupan por código en mayúsculas; variantes sin talla
// cuentan en el total pero no en el mapa.
func TestSummarize_StockPorTalla(t *testing.T) {
	p := producto("10.00", 0)
	vs := []*entity.ProductVariant{
		variante(nil, 3, str("m")),
		variante(nil, 2, str("M")),
		variante(nil, 4, str("L")),
		variante(nil, 1, nil), // sin talla
	}

	s := catalog.Summarize(p, vs)

	assert.Equal(t, int64(10), s.TotalStock)
	assert.Equal(t, map[string]int64{"M": 5, "L": 4}, s.SizeStock)
}
