package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest body para POST /api/compras.
type CreatePurchaseRequest struct {
	SupplierID int64                 `json:"idProveedor"`
	Date       string                `json:"fecha,omitempty"` // YYYY-MM-DD; vacío = hoy
	Note       *string               `json:"nota,omitempty"`
	Items      []PurchaseItemRequest `json:"detalles"`
}

// PurchaseItemRequest línea de compra del request.
type PurchaseItemRequest struct {
	ProductID int64           `json:"idProducto"`
	VariantID *int64          `json:"idVariante,omitempty"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precioUnitario"`
}

// CreatePurchaseResponse respuesta de creación: id de la compra.
type CreatePurchaseResponse struct {
	ID int64 `json:"id"`
}

// PurchaseResponse cabecera de compra con detalles denormalizados y abonos.
type PurchaseResponse struct {
	ID         int64                  `json:"id"`
	SupplierID int64                  `json:"idProveedor"`
	UserID     *int64                 `json:"idUsuario,omitempty"`
	Date       time.Time              `json:"fecha"`
	Note       string                 `json:"nota,omitempty"`
	Total      decimal.Decimal        `json:"total"`
	Items      []PurchaseItemResponse `json:"detalles"`
	Payments   []PaymentResponse      `json:"pagos"`
}

// PurchaseItemResponse línea con producto y variante resueltos.
type PurchaseItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"idProducto"`
	ProductName string          `json:"producto"`
	VariantID   *int64          `json:"idVariante,omitempty"`
	SKU         *string         `json:"sku,omitempty"`
	Color       *string         `json:"color,omitempty"`
	Size        *string         `json:"talla,omitempty"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precioUnitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PurchaseListResponse listado paginado de cabeceras.
type PurchaseListResponse struct {
	Items []PurchaseHeaderResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// PurchaseHeaderResponse cabecera sin detalles (listados).
type PurchaseHeaderResponse struct {
	ID         int64           `json:"id"`
	SupplierID int64           `json:"idProveedor"`
	Date       time.Time       `json:"fecha"`
	Note       string          `json:"nota,omitempty"`
	Total      decimal.Decimal `json:"total"`
}

// CreatePaymentRequest body para POST /api/compras/:id/pagos.
type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"monto"`
	Method string          `json:"metodo"`
	Note   string          `json:"nota,omitempty"`
	Date   string          `json:"fecha,omitempty"` // YYYY-MM-DD; vacío = hoy
}

// PaymentResponse abono a proveedor asociado a una compra.
type PaymentResponse struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"monto"`
	Method string          `json:"metodo"`
	Note   string          `json:"nota,omitempty"`
	Date   time.Time       `json:"fecha"`
}
