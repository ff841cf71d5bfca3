package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeIngreso = "ingreso" // entrada de stock
	MovementTypeEgreso  = "egreso"  // salida de stock
	MovementTypeAjuste  = "ajuste"  // conciliación manual, nunca reversible
)

// StockMovement es un asiento del libro de inventario: un cambio puntual de
// stock sobre un producto o una variante concreta. Quantity siempre es
// positiva; el tipo determina el signo del efecto.
type StockMovement struct {
	ID        int64
	ProductID int64
	VariantID *int64 // nil = movimiento contra el producto (ruta legada)
	Type      string // ingreso, egreso, ajuste
	Quantity  int64
	Reference string // ej. "compra:42", nota de ajuste
	UserID    *int64 // auditoría; opcional
	Date      time.Time
}

// Reversible indica si el asiento admite reversa. Los ajustes representan
// conciliaciones y son permanentes.
func (m *StockMovement) Reversible() bool {
	return m.Type == MovementTypeIngreso || m.Type == MovementTypeEgreso
}
