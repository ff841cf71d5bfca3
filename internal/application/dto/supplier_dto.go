package dto

import "time"

// CreateSupplierRequest body para POST /api/proveedores.
type CreateSupplierRequest struct {
	Name  string  `json:"nombre"`
	NIT   *string `json:"nit,omitempty"`
	Phone *string `json:"telefono,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/proveedores/:id.
type UpdateSupplierRequest struct {
	Name   *string `json:"nombre,omitempty"`
	NIT    *string `json:"nit,omitempty"`
	Phone  *string `json:"telefono,omitempty"`
	Email  *string `json:"email,omitempty"`
	Active *bool   `json:"activo,omitempty"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	NIT       *string   `json:"nit,omitempty"`
	Phone     *string   `json:"telefono,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
