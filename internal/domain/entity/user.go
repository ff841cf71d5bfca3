package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User representa un usuario del back-office. Active es el flag
// habilitado/deshabilitado; se persiste en la fila del usuario para que
// sobreviva reinicios y múltiples instancias.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt; nunca plano después de persistir
	Name         string
	Role         string // admin, bodeguero, vendedor
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
