package dto

import "github.com/shopspring/decimal"

// CatalogProductResponse producto con su vista agregada para listados de
// la tienda: rango de precios, stock total, stock bajo y stock por talla.
type CatalogProductResponse struct {
	ID         int64             `json:"id"`
	Name       string            `json:"nombre"`
	PriceMin   decimal.Decimal   `json:"precioMin"`
	PriceMax   decimal.Decimal   `json:"precioMax"`
	HasRange   bool              `json:"tieneRango"`
	TotalStock int64             `json:"stockTotal"`
	LowStock   bool              `json:"stockBajo"`
	SizeStock  map[string]int64  `json:"stockPorTalla"`
	Variants   []VariantResponse `json:"variantes,omitempty"`
}

// CatalogListResponse listado del catálogo público.
type CatalogListResponse struct {
	Items []CatalogProductResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
