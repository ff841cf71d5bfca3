package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor de la tienda.
type Supplier struct {
	ID        int64
	Name      string
	NIT       *string
	Phone     *string
	Email     *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierPayment es un abono registrado contra una compra.
type SupplierPayment struct {
	ID         int64
	PurchaseID int64
	Amount     decimal.Decimal
	Method     string // efectivo, transferencia, etc.
	Note       string
	Date       time.Time
}
