package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
)

// PurchaseItemView es la línea de compra denormalizada para lecturas:
// nombre del producto y sku/color/talla de la variante resueltos por JOIN.
type PurchaseItemView struct {
	ID          int64
	ProductID   int64
	ProductName string
	VariantID   *int64
	SKU         *string
	ColorName   *string
	SizeCode    *string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// PurchaseRepository define el puerto de persistencia para compras.
// CreateLineItems se usa únicamente dentro de la transacción de creación;
// las líneas son inmutables después.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateLineItems(items []*entity.PurchaseLineItem) error
	GetByID(id int64) (*entity.Purchase, error)
	ListItems(purchaseID int64) ([]*PurchaseItemView, error)
	List(limit, offset int) ([]*entity.Purchase, error)
}

// PaymentRepository define el puerto para abonos a proveedor por compra.
type PaymentRepository interface {
	Create(payment *entity.SupplierPayment) error
	ListByPurchase(purchaseID int64) ([]*entity.SupplierPayment, error)
}
