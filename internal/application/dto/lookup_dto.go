package dto

// CategoryResponse categoría del catálogo.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// ColorResponse color disponible para variantes.
type ColorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// SizeResponse talla disponible para variantes.
type SizeResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"codigo"`
	Name string `json:"nombre"`
}
