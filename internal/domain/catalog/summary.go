package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
)

// LowStockThreshold es el umbral fijo de stock bajo: 0 < total <= umbral.
const LowStockThreshold = 5

// Summary es la vista derivada de un producto con sus variantes, usada por
// todas las superficies de listado (catálogo público y back-office).
type Summary struct {
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
	HasRange   bool // PriceMin != PriceMax
	TotalStock int64
	LowStock   bool
	SizeStock  map[string]int64 // código de talla en mayúsculas -> stock sumado
}

// Summarize calcula la vista derivada de un producto (servicio de dominio,
// función pura). El precio de una variante sin precio propio hereda el del
// producto; variantes sin talla resoluble quedan fuera de SizeStock pero sí
// cuentan en TotalStock. Sin variantes, el rango colapsa al precio del
// producto y el stock es el del producto.
func Summarize(product *entity.Product, variants []*entity.ProductVariant) Summary {
	s := Summary{
		PriceMin:  product.Price,
		PriceMax:  product.Price,
		SizeStock: map[string]int64{},
	}
	if len(variants) == 0 {
		s.TotalStock = product.Stock
		s.LowStock = lowStock(s.TotalStock)
		return s
	}

	for i, v := range variants {
		price := product.Price
		if v.Price != nil {
			price = *v.Price
		}
		if i == 0 {
			s.PriceMin = price
			s.PriceMax = price
		} else {
			if price.LessThan(s.PriceMin) {
				s.PriceMin = price
			}
			if price.GreaterThan(s.PriceMax) {
				s.PriceMax = price
			}
		}
		s.TotalStock += v.Stock
		if v.SizeCode != nil && *v.SizeCode != "" {
			code := strings.ToUpper(*v.SizeCode)
			s.SizeStock[code] += v.Stock
		}
	}
	s.HasRange = !s.PriceMin.Equal(s.PriceMax)
	s.LowStock = lowStock(s.TotalStock)
	return s
}

func lowStock(total int64) bool {
	return total > 0 && total <= LowStockThreshold
}
