package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant representa una configuración vendible de un producto
// (color × talla) con su propio precio y stock.
// Invariante central del inventario: Stock >= 0 en todo momento.
type ProductVariant struct {
	ID        int64
	ProductID int64
	ColorID   *int64
	SizeID    *int64
	SKU       *string          // único cuando está presente
	Price     *decimal.Decimal // nil = hereda el precio del producto
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Campos resueltos por JOIN en lecturas; no se persisten desde aquí.
	ColorName *string
	SizeCode  *string
}
