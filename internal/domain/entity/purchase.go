package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase es la cabecera de una compra a proveedor. Total es derivado:
// Σ(cantidad × precio unitario) de sus líneas.
type Purchase struct {
	ID         int64
	SupplierID int64
	UserID     *int64 // usuario que registró la compra (auditoría)
	Date       time.Time
	Note       string
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// PurchaseLineItem es una línea de compra. Si VariantID está presente el
// ingreso de stock apunta a la variante; si no, el asiento se registra
// contra el producto (ruta legada, sin mutación de stock).
type PurchaseLineItem struct {
	ID         int64
	PurchaseID int64
	ProductID  int64
	VariantID  *int64
	Quantity   int64           // > 0
	UnitPrice  decimal.Decimal // >= 0
}
