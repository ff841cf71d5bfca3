package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la tienda. Price y Stock son los valores
// base: cuando el producto tiene variantes, el precio y el stock efectivos
// viven en cada ProductVariant y estos campos actúan de respaldo.
type Product struct {
	ID         int64
	Name       string
	Price      decimal.Decimal // precio de venta base
	Stock      int64           // stock propio; solo aplica sin variantes
	CategoryID *int64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
