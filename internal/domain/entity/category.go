package entity

// Category agrupa productos en el catálogo.
type Category struct {
	ID   int64
	Name string
}

// Color catálogo de colores para variantes.
type Color struct {
	ID   int64
	Name string
}

// Size catálogo de tallas para variantes. Code es el código corto (S, M, L, 38…).
type Size struct {
	ID   int64
	Code string
	Name string
}
