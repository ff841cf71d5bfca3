package dto

import "time"

// RegisterMovementRequest body para POST /api/inventario/movimientos.
// Para ingreso/egreso: cantidad > 0. Para ajuste: nuevoStock >= 0 (el
// sistema calcula el delta y lo registra como conciliación permanente).
type RegisterMovementRequest struct {
	ProductID int64  `json:"idProducto"`
	VariantID *int64 `json:"idVariante,omitempty"`
	Type      string `json:"tipo"` // ingreso, egreso, ajuste
	Quantity  int64  `json:"cantidad,omitempty"`
	NewStock  *int64 `json:"nuevoStock,omitempty"` // solo ajuste
	Reference string `json:"referencia,omitempty"`
}

// MovementResponse asiento del libro de inventario.
type MovementResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"idProducto"`
	VariantID *int64    `json:"idVariante,omitempty"`
	Type      string    `json:"tipo"`
	Quantity  int64     `json:"cantidad"`
	Reference string    `json:"referencia,omitempty"`
	UserID    *int64    `json:"idUsuario,omitempty"`
	Date      time.Time `json:"fecha"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
