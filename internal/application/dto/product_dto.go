package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/productos.
type CreateProductRequest struct {
	Name       string          `json:"nombre"`
	Price      decimal.Decimal `json:"precio"`
	Stock      int64           `json:"stock,omitempty"` // stock base; solo aplica sin variantes
	CategoryID *int64          `json:"idCategoria,omitempty"`
}

// UpdateProductRequest body para PUT /api/productos/:id (campos opcionales).
type UpdateProductRequest struct {
	Name       *string          `json:"nombre,omitempty"`
	Price      *decimal.Decimal `json:"precio,omitempty"`
	CategoryID *int64           `json:"idCategoria,omitempty"`
	Active     *bool            `json:"activo,omitempty"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID         int64             `json:"id"`
	Name       string            `json:"nombre"`
	Price      decimal.Decimal   `json:"precio"`
	Stock      int64             `json:"stock"`
	CategoryID *int64            `json:"idCategoria,omitempty"`
	Active     bool              `json:"activo"`
	Variants   []VariantResponse `json:"variantes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateVariantRequest body para POST /api/productos/:id/variantes.
type CreateVariantRequest struct {
	ColorID *int64           `json:"idColor,omitempty"`
	SizeID  *int64           `json:"idTalla,omitempty"`
	SKU     *string          `json:"sku,omitempty"`
	Price   *decimal.Decimal `json:"precio,omitempty"` // nil = hereda el del producto
}

// UpdateVariantRequest body para PUT /api/variantes/:id (campos opcionales).
// El stock no se edita aquí; se mueve vía movimientos de inventario.
type UpdateVariantRequest struct {
	ColorID *int64           `json:"idColor,omitempty"`
	SizeID  *int64           `json:"idTalla,omitempty"`
	SKU     *string          `json:"sku,omitempty"`
	Price   *decimal.Decimal `json:"precio,omitempty"`
}

// VariantResponse representación de una variante.
type VariantResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"idProducto"`
	ColorID   *int64           `json:"idColor,omitempty"`
	Color     *string          `json:"color,omitempty"`
	SizeID    *int64           `json:"idTalla,omitempty"`
	Size      *string          `json:"talla,omitempty"`
	SKU       *string          `json:"sku,omitempty"`
	Price     *decimal.Decimal `json:"precio,omitempty"`
	Stock     int64            `json:"stock"`
}
